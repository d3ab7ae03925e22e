package dto

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a login response. Token is empty when bearer
// tokens are disabled.
type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Token   string `json:"token,omitempty"`
}
