package dto

// CreateUserRequest is the body of POST /users. The password arrives in
// plaintext and is hashed before storage; it is never echoed back.
type CreateUserRequest struct {
	Nama     string `json:"nama" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the body of PUT /users/:id. Nil fields are left
// unchanged; a supplied password is re-hashed.
type UpdateUserRequest struct {
	Nama     *string `json:"nama"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
