package dto

// CreateReviewRequest is the body of POST /reviews. KegiatanID is recorded
// as-is; the schema does not enforce that the event exists.
type CreateReviewRequest struct {
	UserID        uint64 `json:"user_id" binding:"required"`
	KegiatanID    uint64 `json:"kegiatan_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Komentar      string `json:"komentar"`
	TanggalReview string `json:"tanggal_review" binding:"required"`
}

// UpdateReviewRequest is the body of PUT /reviews/:id. Nil fields are left
// unchanged.
type UpdateReviewRequest struct {
	Rating        *int    `json:"rating"`
	Komentar      *string `json:"komentar"`
	TanggalReview *string `json:"tanggal_review"`
}
