package request

// LoginRequest represents a username/password login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SocialLoginRequest carries the provider token for a social login
type SocialLoginRequest struct {
	Token string `json:"token" binding:"required"`
}
