package store

import (
	"context"
	"fmt"
	"strings"
)

func (s *Store) CreateUser(ctx context.Context, in NewUser) (*User, error) {
	if err := validateUser(in.Username, in.Email, in.Role); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUserUnique(0, in.Username, in.Email); err != nil {
		return nil, err
	}
	u := s.users.insert(func(id int64) User {
		return User{
			ID:        id,
			Username:  in.Username,
			Password:  in.Password,
			FullName:  in.FullName,
			Email:     in.Email,
			Role:      in.Role,
			AvatarURL: in.AvatarURL,
		}
	})
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.find(func(u User) bool { return u.Username == username })
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.list(), nil
}

// UpdateUser merges the non-nil fields of patch into the stored user.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = *patch.AvatarURL
	}
	if err := validateUser(u.Username, u.Email, u.Role); err != nil {
		return nil, err
	}
	if err := s.checkUserUnique(id, u.Username, u.Email); err != nil {
		return nil, err
	}
	s.users.put(id, u)
	return &u, nil
}

// DeleteUser removes a user. Users that still own orders cannot be deleted.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.get(id); !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if o, ok := s.orders.find(func(o Order) bool { return o.UserID == id }); ok {
		return fmt.Errorf("user %d is referenced by order %s: %w", id, o.OrderNumber, ErrConflict)
	}
	s.users.remove(id)
	return nil
}

func (s *Store) checkUserUnique(self int64, username, email string) error {
	if u, ok := s.users.find(func(u User) bool { return u.ID != self && u.Username == username }); ok {
		return fmt.Errorf("username %q already taken by user %d: %w", username, u.ID, ErrConflict)
	}
	if u, ok := s.users.find(func(u User) bool { return u.ID != self && strings.EqualFold(u.Email, email) }); ok {
		return fmt.Errorf("email %q already taken by user %d: %w", email, u.ID, ErrConflict)
	}
	return nil
}

func validateUser(username, email string, role Role) error {
	if username == "" {
		return fmt.Errorf("username is required: %w", ErrValidation)
	}
	if email == "" {
		return fmt.Errorf("email is required: %w", ErrValidation)
	}
	if !role.Valid() {
		return fmt.Errorf("invalid role %q: %w", role, ErrValidation)
	}
	return nil
}
