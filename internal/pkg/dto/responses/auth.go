package responses

import "time"

type RegisterUser struct {
	UserID string `json:"user_id"`
}

type LoginUser struct {
	TokenType   string    `json:"token_type"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UserProfile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Apartment int    `json:"apartment"`
	Name      string `json:"name"`
}
