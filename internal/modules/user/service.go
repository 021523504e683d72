package user

import (
	"context"
	"fmt"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Service defines the interface for user-related business logic.
type Service interface {
	ListUsers(ctx context.Context) ([]store.User, error)
	GetUser(ctx context.Context, id int64) (*store.User, error)
	GetProfile(ctx context.Context) (*store.User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*store.User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*store.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error
}

type service struct {
	repo Repository
	hash store.PasswordHasher
}

// NewService creates a new user service hashing passwords with bcrypt at cost.
func NewService(repo Repository, cost int) Service {
	return &service{repo: repo, hash: PasswordHasher(cost)}
}

func (s *service) ListUsers(ctx context.Context) ([]store.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) GetUser(ctx context.Context, id int64) (*store.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *service) GetProfile(ctx context.Context) (*store.User, error) {
	return s.repo.GetUserByUsername(ctx, DemoUsername)
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*store.User, error) {
	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	role := store.Role(req.Role)
	if role == "" {
		role = store.RoleUser
	}
	return s.repo.CreateUser(ctx, store.NewUser{
		Username:  req.Username,
		Password:  hashed,
		FullName:  req.FullName,
		Email:     req.Email,
		Role:      role,
		AvatarURL: req.AvatarURL,
	})
}

func (s *service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*store.User, error) {
	patch := store.UserPatch{
		FullName:  req.FullName,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	}
	if req.Role != nil {
		role := store.Role(*req.Role)
		patch.Role = &role
	}
	if req.Password != nil {
		hashed, err := s.hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.Password = &hashed
	}
	return s.repo.UpdateUser(ctx, id, patch)
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *service) ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !CheckPassword(u.Password, req.CurrentPassword) {
		return fmt.Errorf("current password is incorrect: %w", store.ErrValidation)
	}
	hashed, err := s.hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.repo.UpdateUser(ctx, u.ID, store.UserPatch{Password: &hashed})
	return err
}
