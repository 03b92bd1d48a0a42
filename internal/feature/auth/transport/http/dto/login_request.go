package dto

// LoginReq represents the request body for the /login endpoint.
// Both fields are required; the email must be structurally valid.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
