package user

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Repository defines data access for users. *store.Store satisfies it.
type Repository interface {
	CreateUser(ctx context.Context, in store.NewUser) (*store.User, error)
	GetUser(ctx context.Context, id int64) (*store.User, error)
	GetUserByUsername(ctx context.Context, username string) (*store.User, error)
	ListUsers(ctx context.Context) ([]store.User, error)
	UpdateUser(ctx context.Context, id int64, patch store.UserPatch) (*store.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
