package auth

// RegisterRequest is the payload for POST /users. Every field is
// required; the handler rejects partial payloads before touching the
// service.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"John Doe"`
	Username string `json:"username" validate:"required" example:"johndoe"`
	Email    string `json:"email" validate:"required" example:"john@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginRequest is the payload for POST /user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"john@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginResponse is returned on successful login alongside the token
// cookie. User carries the account id as a string.
type LoginResponse struct {
	Message string `json:"message" example:"Welcome back John Doe"`
	User    string `json:"user" example:"42"`
	Success bool   `json:"success" example:"true"`
}
