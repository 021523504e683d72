package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*store.Store, *chi.Mux) {
	t.Helper()
	s := store.New(store.WithClock(func() time.Time { return now }))
	require.NoError(t, store.Seed(context.Background(), s, nil))
	router := chi.NewRouter()
	NewHandler(NewService(s)).RegisterRoutes(router)
	return s, router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type orderJSON struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	OrderNumber string `json:"orderNumber"`
	TotalAmount string `json:"totalAmount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	User        *struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

func TestListOrdersJoinsUsers(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []orderJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 5)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, "john", orders[0].User.Username)
	assert.Equal(t, "1299.99", orders[0].TotalAmount)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRecentOrders(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodGet, "/api/orders/recent", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []orderJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 5)
	assert.Equal(t, int64(4), orders[0].ID)

	rec = do(router, http.MethodGet, "/api/orders/recent?limit=2", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/orders/recent?limit=x", "").Code)
}

func TestPlaceOrder(t *testing.T) {
	s, router := setup(t)

	rec := do(router, http.MethodPost, "/api/orders",
		`{"userId":2,"status":"processing","items":[{"productId":5,"quantity":2},{"productId":1,"quantity":1,"price":"1000"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var o orderJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, int64(6), o.ID)
	assert.Equal(t, "1179.98", o.TotalAmount)
	assert.Equal(t, "processing", o.Status)
	assert.Regexp(t, `^ORD-\d{4}-[0-9A-F]{4}$`, o.OrderNumber)

	items, err := s.ListOrderItemsByOrder(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	rec = do(router, http.MethodGet, "/api/orders/number/"+o.OrderNumber, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":6`)
}

func TestPlaceOrderWithoutItems(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodPost, "/api/orders", `{"userId":2,"totalAmount":"89.99","status":"pending"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"totalAmount":"89.99"`)
	assert.Contains(t, rec.Body.String(), `"createdAt":"2024-03-15T14:30:00Z"`)
}

func TestPlaceOrderRejectsBadInput(t *testing.T) {
	s, router := setup(t)

	for _, body := range []string{
		`{"status":"pending"}`,
		`{"userId":2,"status":"lost"}`,
		`{"userId":2,"items":[{"productId":1,"quantity":0}]}`,
		`{"userId":99}`,
		`{"userId":2}`,
		`{"userId":2,"items":[]}`,
		`{"userId":2,"items":[{"productId":99,"quantity":1}]}`,
		`not json`,
	} {
		rec := do(router, http.MethodPost, "/api/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	orders, err := s.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func TestGetOrder(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodGet, "/api/orders/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/orders/42", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/orders/number/ORD-0000-NONE", "").Code)
}

func TestUpdateOrder(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodPatch, "/api/orders/4", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var o orderJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, "shipped", o.Status)
	assert.Equal(t, "89.99", o.TotalAmount)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPatch, "/api/orders/4", `{"status":"lost"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPatch, "/api/orders/40", `{"status":"shipped"}`).Code)
}

func TestDeleteOrderCascades(t *testing.T) {
	s, router := setup(t)

	rec := do(router, http.MethodDelete, "/api/orders/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/orders/2/items", "").Code)
	items, err := s.ListOrderItemsByOrder(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/orders/2", "").Code)
}

func TestOrderItems(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodGet, "/api/orders/2/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), `"productId"`))

	rec = do(router, http.MethodPost, "/api/orders/2/items", `{"productId":4,"quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"price":"499.99"`)
	assert.Contains(t, rec.Body.String(), `"id":7`)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/api/orders/77/items", `{"productId":4,"quantity":1}`).Code)
}

func TestDeletedUserOrdersStayVisible(t *testing.T) {
	s, router := setup(t)

	// users that own orders cannot be deleted, so their orders keep resolving
	assert.ErrorIs(t, s.DeleteUser(context.Background(), 3), store.ErrConflict)

	var orders []orderJSON
	rec := do(router, http.MethodGet, "/api/orders", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 5)
}
