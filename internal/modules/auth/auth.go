package auth

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks the credentials and issues a signed token.
	Login(ctx context.Context, username, password string) (*Session, error)

	// Me returns the account behind token. Without a token it falls back to
	// the demo administrator.
	Me(ctx context.Context, token string) (*store.User, error)
}

// Session is a successful login: the account plus its bearer token.
type Session struct {
	*store.User
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
