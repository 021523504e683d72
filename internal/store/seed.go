package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PasswordHasher turns a plain-text password into its stored form.
type PasswordHasher func(plain string) (string, error)

const (
	avatarAdmin = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
	avatarJohn  = "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
	avatarJane  = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
	avatarBob   = "https://images.unsplash.com/photo-1519244703995-f4e0f30006d5?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
	placeholder = "https://placehold.co/600x400"
)

// Seed loads the demo dataset into an empty store: one admin, five products,
// three more accounts, five orders spread over the last four days and six
// order items. Passwords go through hash when it is non-nil.
func Seed(ctx context.Context, s *Store, hash PasswordHasher) error {
	if hash == nil {
		hash = func(p string) (string, error) { return p, nil }
	}

	users := []NewUser{
		{Username: "admin", Password: "admin", FullName: "Admin User", Email: "admin@example.com", Role: RoleAdmin, AvatarURL: avatarAdmin},
	}
	products := []NewProduct{
		{Name: "Laptop Pro", Description: "High-end laptop for professionals", Price: money("1299.99"), ImageURL: placeholder, Category: "Electronics", Stock: 25},
		{Name: "Smart Watch", Description: "Latest smart watch with health tracking", Price: money("249.99"), ImageURL: placeholder, Category: "Wearables", Stock: 40},
		{Name: "Wireless Earbuds", Description: "Premium noise-cancelling earbuds", Price: money("179.99"), ImageURL: placeholder, Category: "Audio", Stock: 60},
		{Name: "4K Monitor", Description: "Ultra HD monitor for graphic designers", Price: money("499.99"), ImageURL: placeholder, Category: "Computer Accessories", Stock: 15},
		{Name: "Gaming Mouse", Description: "Precision gaming mouse with customizable buttons", Price: money("89.99"), ImageURL: placeholder, Category: "Gaming", Stock: 50},
	}
	users = append(users,
		NewUser{Username: "john", Password: "password", FullName: "John Doe", Email: "john@example.com", Role: RoleCustomer, AvatarURL: avatarJohn},
		NewUser{Username: "jane", Password: "password", FullName: "Jane Smith", Email: "jane@example.com", Role: RoleCustomer, AvatarURL: avatarJane},
		NewUser{Username: "bob", Password: "password", FullName: "Bob Johnson", Email: "bob@example.com", Role: RoleManager, AvatarURL: avatarBob},
	)

	for _, u := range users[:1] {
		if err := seedUser(ctx, s, u, hash); err != nil {
			return err
		}
	}
	for _, p := range products {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	for _, u := range users[1:] {
		if err := seedUser(ctx, s, u, hash); err != nil {
			return err
		}
	}

	now := s.now()
	orders := []struct {
		userID int64
		status OrderStatus
		total  string
		age    time.Duration
		items  []NewOrderItem
	}{
		{2, StatusCompleted, "1299.99", 48 * time.Hour, []NewOrderItem{{ProductID: 1, Quantity: 1, Price: ptr(money("1299.99"))}}},
		{3, StatusShipped, "339.98", 96 * time.Hour, []NewOrderItem{
			{ProductID: 2, Quantity: 1, Price: ptr(money("249.99"))},
			{ProductID: 3, Quantity: 1, Price: ptr(money("89.99"))},
		}},
		{4, StatusProcessing, "499.99", 24 * time.Hour, []NewOrderItem{{ProductID: 4, Quantity: 1, Price: ptr(money("499.99"))}}},
		{2, StatusPending, "89.99", 12 * time.Hour, []NewOrderItem{{ProductID: 5, Quantity: 1, Price: ptr(money("89.99"))}}},
		{3, StatusCancelled, "179.99", 36 * time.Hour, []NewOrderItem{{ProductID: 3, Quantity: 1, Price: ptr(money("179.99"))}}},
	}
	for _, o := range orders {
		createdAt := now.Add(-o.age)
		_, err := s.CreateOrder(ctx, NewOrder{
			UserID:      o.userID,
			TotalAmount: ptr(money(o.total)),
			Status:      o.status,
			CreatedAt:   &createdAt,
			Items:       o.items,
		})
		if err != nil {
			return fmt.Errorf("seed order for user %d: %w", o.userID, err)
		}
	}
	return nil
}

func seedUser(ctx context.Context, s *Store, u NewUser, hash PasswordHasher) error {
	hashed, err := hash(u.Password)
	if err != nil {
		return fmt.Errorf("seed user %q: %w", u.Username, err)
	}
	u.Password = hashed
	if _, err := s.CreateUser(ctx, u); err != nil {
		return fmt.Errorf("seed user %q: %w", u.Username, err)
	}
	return nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }
