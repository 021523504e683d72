package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func newSeeded(t *testing.T) *Store {
	t.Helper()
	s := New(WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, Seed(context.Background(), s, nil))
	return s
}

func TestSeedCounts(t *testing.T) {
	s := newSeeded(t)
	snap := s.Snapshot(context.Background())

	assert.Len(t, snap.Users, 4)
	assert.Len(t, snap.Products, 5)
	assert.Len(t, snap.Orders, 5)
	assert.Len(t, snap.OrderItems, 6)

	admin, err := s.GetUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), admin.ID)
	assert.Equal(t, RoleAdmin, admin.Role)
}

func TestSeedHashesPasswords(t *testing.T) {
	s := New()
	err := Seed(context.Background(), s, func(p string) (string, error) { return "hashed:" + p, nil })
	require.NoError(t, err)

	u, err := s.GetUserByUsername(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, "hashed:password", u.Password)
}

func TestIdentifiersAreMonotonic(t *testing.T) {
	ctx := context.Background()
	s := New()

	var last int64
	for i := 0; i < 3; i++ {
		p, err := s.CreateProduct(ctx, NewProduct{Name: fmt.Sprintf("p%d", i), Price: decimal.NewFromInt(1)})
		require.NoError(t, err)
		assert.Equal(t, last+1, p.ID)
		last = p.ID
	}

	require.NoError(t, s.DeleteProduct(ctx, last))
	p, err := s.CreateProduct(ctx, NewProduct{Name: "again", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID, "ids are not reused after deletion")
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	created, err := s.CreateUser(ctx, NewUser{
		Username: "alice", Password: "secret", FullName: "Alice", Email: "alice@example.com", Role: RoleCustomer,
	})
	require.NoError(t, err)

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, int64(5), got.ID)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := newSeeded(t)
	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Laptop Pro", "Smart Watch", "Wireless Earbuds", "4K Monitor", "Gaming Mouse"}, names)
}

func TestUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	before, err := s.GetProduct(ctx, 2)
	require.NoError(t, err)

	stock := 3
	after, err := s.UpdateProduct(ctx, 2, ProductPatch{Stock: &stock})
	require.NoError(t, err)

	want := *before
	want.Stock = 3
	assert.Equal(t, want, *after)

	fullName := "Johnny Doe"
	u, err := s.UpdateUser(ctx, 2, UserPatch{FullName: &fullName})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", u.FullName)
	assert.Equal(t, "john", u.Username)
	assert.Equal(t, "john@example.com", u.Email)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	name := "x"
	_, err := s.UpdateProduct(ctx, 99, ProductPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateUser(ctx, 99, UserPatch{FullName: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateOrder(ctx, 99, OrderPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, 99), ErrNotFound)
	assert.ErrorIs(t, s.DeleteProduct(ctx, 99), ErrNotFound)
	assert.ErrorIs(t, s.DeleteOrder(ctx, 99), ErrNotFound)

	_, err = s.GetOrder(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	items, err := s.ListOrderItemsByOrder(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, s.DeleteOrder(ctx, 2))

	items, err = s.ListOrderItemsByOrder(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, items)

	all, err := s.ListOrderItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = s.GetOrderItem(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReferencedEntitiesConflicts(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	err := s.DeleteUser(ctx, 2)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = s.GetUser(ctx, 2)
	assert.NoError(t, err)

	assert.ErrorIs(t, s.DeleteProduct(ctx, 1), ErrConflict)

	// admin owns no orders
	assert.NoError(t, s.DeleteUser(ctx, 1))

	// once the referencing order is gone the product can be removed
	require.NoError(t, s.DeleteOrder(ctx, 1))
	assert.NoError(t, s.DeleteProduct(ctx, 1))
}

func TestUniqueUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	_, err := s.CreateUser(ctx, NewUser{Username: "john", Email: "new@example.com", Role: RoleUser})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateUser(ctx, NewUser{Username: "newbie", Email: "JANE@example.com", Role: RoleUser})
	assert.ErrorIs(t, err, ErrConflict)

	email := "bob@example.com"
	_, err = s.UpdateUser(ctx, 2, UserPatch{Email: &email})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	_, err := s.CreateUser(ctx, NewUser{Username: "x", Email: "x@example.com", Role: "root"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateProduct(ctx, NewProduct{Name: "neg", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrValidation)

	stock := -5
	_, err = s.UpdateProduct(ctx, 1, ProductPatch{Stock: &stock})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateOrder(ctx, NewOrder{UserID: 42})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateOrder(ctx, NewOrder{UserID: 2, Status: "lost"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateOrder(ctx, NewOrder{UserID: 2, Items: []NewOrderItem{{ProductID: 1, Quantity: 0}}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateOrder(ctx, NewOrder{UserID: 2, Items: []NewOrderItem{{ProductID: 77, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrValidation)

	orders, _ := s.ListOrders(ctx)
	assert.Len(t, orders, 5, "rejected orders leave no trace")
	items, _ := s.ListOrderItems(ctx)
	assert.Len(t, items, 6)
}

func TestCreateOrderWithItems(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	o, err := s.CreateOrder(ctx, NewOrder{
		UserID: 3,
		Items: []NewOrderItem{
			{ProductID: 5, Quantity: 2},
			{ProductID: 2, Quantity: 1, Price: ptr(money("200.00"))},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, fixedNow, o.CreatedAt)
	assert.True(t, money("379.98").Equal(o.TotalAmount), "got %s", o.TotalAmount)
	assert.Regexp(t, `^ORD-\d{4}-[0-9A-F]{4}$`, o.OrderNumber)

	items, err := s.ListOrderItemsByOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(7), items[0].ID)
	assert.True(t, money("89.99").Equal(items[0].Price))

	byNumber, err := s.GetOrderByNumber(ctx, o.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, o.ID, byNumber.ID)
}

func TestItemPriceIsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	it, err := s.CreateOrderItem(ctx, NewOrderItem{OrderID: 4, ProductID: 5, Quantity: 1})
	require.NoError(t, err)

	newPrice := money("10.00")
	_, err = s.UpdateProduct(ctx, 5, ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	got, err := s.GetOrderItem(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, money("89.99").Equal(got.Price))

	_, err = s.CreateOrderItem(ctx, NewOrderItem{OrderID: 99, ProductID: 5, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderNumberCollisionRetries(t *testing.T) {
	ctx := context.Background()
	numbers := []string{"ORD-0001-AAAA", "ORD-0001-AAAA", "ORD-0001-BBBB"}
	i := 0
	s := New(WithOrderNumberGenerator(func(time.Time) string {
		n := numbers[i]
		i++
		return n
	}))
	_, err := s.CreateUser(ctx, NewUser{Username: "u", Email: "u@example.com", Role: RoleCustomer})
	require.NoError(t, err)

	first, err := s.CreateOrder(ctx, NewOrder{UserID: 1})
	require.NoError(t, err)
	second, err := s.CreateOrder(ctx, NewOrder{UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, "ORD-0001-AAAA", first.OrderNumber)
	assert.Equal(t, "ORD-0001-BBBB", second.OrderNumber)
}

func TestOrderNumberGiveUp(t *testing.T) {
	ctx := context.Background()
	s := New(WithOrderNumberGenerator(func(time.Time) string { return "ORD-0000-SAME" }))
	_, err := s.CreateUser(ctx, NewUser{Username: "u", Email: "u@example.com", Role: RoleCustomer})
	require.NoError(t, err)

	_, err = s.CreateOrder(ctx, NewOrder{UserID: 1})
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, NewOrder{UserID: 1})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	p, err := s.GetProduct(ctx, 1)
	require.NoError(t, err)
	p.Name = "mutated"

	again, err := s.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", again.Name)
}

func TestGenerateOrderNumber(t *testing.T) {
	n := GenerateOrderNumber(time.UnixMilli(1700000001234))
	assert.Regexp(t, `^ORD-1234-[0-9A-F]{4}$`, n)

	n = GenerateOrderNumber(time.UnixMilli(1700000000007))
	assert.Regexp(t, `^ORD-0007-[0-9A-F]{4}$`, n)
}

func TestAdjustStockConcurrent(t *testing.T) {
	s := newSeeded(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AdjustStock(ctx, 3, -1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := s.GetProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)

	_, err = s.AdjustStock(ctx, 3, -11)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.AdjustStock(ctx, 42, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFreshStoreIdsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(WithClock(func() time.Time { return fixedNow }))

	for i := int64(1); i <= 2; i++ {
		u, err := s.CreateUser(ctx, NewUser{Username: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("u%d@example.com", i), Role: RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, i, u.ID)

		p, err := s.CreateProduct(ctx, NewProduct{Name: fmt.Sprintf("p%d", i), Price: decimal.NewFromInt(i), Stock: int(i)})
		require.NoError(t, err)
		assert.Equal(t, i, p.ID)
	}
	for i := int64(1); i <= 2; i++ {
		o, err := s.CreateOrder(ctx, NewOrder{UserID: i, TotalAmount: ptr(decimal.NewFromInt(10 * i)), Status: StatusPending})
		require.NoError(t, err)
		assert.Equal(t, i, o.ID)

		it, err := s.CreateOrderItem(ctx, NewOrderItem{OrderID: 1, ProductID: i, Quantity: int(i)})
		require.NoError(t, err)
		assert.Equal(t, i, it.ID)
	}

	tests := []struct {
		name string
		get  func(id int64) (any, error)
		want func(id int64) any
	}{
		{"user", func(id int64) (any, error) { return s.GetUser(ctx, id) }, func(id int64) any {
			return &User{ID: id, Username: fmt.Sprintf("u%d", id), Email: fmt.Sprintf("u%d@example.com", id), Role: RoleCustomer}
		}},
		{"product", func(id int64) (any, error) { return s.GetProduct(ctx, id) }, func(id int64) any {
			return &Product{ID: id, Name: fmt.Sprintf("p%d", id), Price: decimal.NewFromInt(id), Stock: int(id)}
		}},
		{"item", func(id int64) (any, error) { return s.GetOrderItem(ctx, id) }, func(id int64) any {
			return &OrderItem{ID: id, OrderID: 1, ProductID: id, Quantity: int(id), Price: decimal.NewFromInt(id)}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for id := int64(1); id <= 2; id++ {
				got, err := tt.get(id)
				require.NoError(t, err)
				assert.Equal(t, tt.want(id), got)
			}
		})
	}

	t.Run("order", func(t *testing.T) {
		for id := int64(1); id <= 2; id++ {
			o, err := s.GetOrder(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, id, o.UserID)
			assert.True(t, decimal.NewFromInt(10*id).Equal(o.TotalAmount))
			assert.Equal(t, StatusPending, o.Status)
			assert.True(t, fixedNow.Equal(o.CreatedAt))

			byNumber, err := s.GetOrderByNumber(ctx, o.OrderNumber)
			require.NoError(t, err)
			assert.Equal(t, o, byNumber)
		}
	})
}
