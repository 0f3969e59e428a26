package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type ProtectedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}
