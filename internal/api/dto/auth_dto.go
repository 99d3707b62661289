package dto

// RegisterRequest payload for new credentials.
type RegisterRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse carries the outcome of a login attempt. Token is null
// when authentication fails; Message states the reason.
type LoginResponse struct {
	Message string  `json:"message"`
	Token   *string `json:"token"`
}
