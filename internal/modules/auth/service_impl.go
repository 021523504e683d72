package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akshayfox/admin-dashboard/internal/modules/user"
	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", store.ErrUnauthorized)

// UserRepository is the part of the user store authentication needs.
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*store.User, error)
	GetUserByUsername(ctx context.Context, username string) (*store.User, error)
}

type service struct {
	userRepo UserRepository
	key      []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates a new auth service signing HS256 tokens with key.
func NewService(userRepo UserRepository, key []byte, ttl time.Duration) Service {
	return &service{userRepo: userRepo, key: key, ttl: ttl, now: time.Now}
}

func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	issuedAt := s.now()
	expirationTime := issuedAt.Add(s.ttl)
	claims := &jwt.StandardClaims{
		Id:        uuid.New().String(),
		Subject:   strconv.FormatInt(u.ID, 10),
		IssuedAt:  issuedAt.Unix(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return nil, err
	}

	return &Session{User: u, Token: tokenString, ExpiresAt: expirationTime.Unix()}, nil
}

func (s *service) Me(ctx context.Context, token string) (*store.User, error) {
	if token == "" {
		u, err := s.userRepo.GetUserByUsername(ctx, user.DemoUsername)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("not authenticated: %w", store.ErrUnauthorized)
		}
		return u, err
	}

	claims := &jwt.StandardClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v: %w", err, store.ErrUnauthorized)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", store.ErrUnauthorized)
	}
	u, err := s.userRepo.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("account no longer exists: %w", store.ErrUnauthorized)
	}
	return u, err
}
