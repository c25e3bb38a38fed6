package response

import (
	"time"

	"github.com/giancarlo349/G-OS3/internal/usecase"
)

type UserResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      UserResponse{UID: s.User.UID, Email: s.User.Email},
	}
}
