package models

import "time"

// User представляет пользователя на сервере
type User struct {
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ID           string     `json:"id"`       // UUID
	Username     string     `json:"username"` // уникальный username
	PasswordHash string     `json:"-"`        // Argon2id хеш пароля (PHC строка)
}

// RefreshToken представляет выданный пользователю refresh token
type RefreshToken struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
}

// Session представляет сохраненную на клиенте сессию пользователя —
// стабильный caller identity после успешного login
type Session struct {
	ExpiresAt    time.Time `json:"expires_at"` // срок действия access token
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// Expired сообщает, истек ли access token сессии
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
