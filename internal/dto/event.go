package dto

// CreateEventRequest is the body of POST /events. Tanggal uses the
// timeformat.EventCreateLayout shape.
type CreateEventRequest struct {
	UserID    uint64 `json:"user_id" binding:"required"`
	Judul     string `json:"judul" binding:"required"`
	Deskripsi string `json:"deskripsi"`
	Tanggal   string `json:"tanggal" binding:"required"`
	Tempat    string `json:"tempat"`
}

// UpdateEventRequest is the body of PUT /events/:id. Nil fields are left
// unchanged. Tanggal uses timeformat.DateTimeLayout, not the creation shape.
type UpdateEventRequest struct {
	Judul     *string `json:"judul"`
	Deskripsi *string `json:"deskripsi"`
	Tanggal   *string `json:"tanggal"`
	Tempat    *string `json:"tempat"`
}
