package models

// RegisterRequest holds the credentials submitted at signup.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest holds the credentials submitted at login. Username is
// optional; Email and Password are used for the fallback lookup.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}
