package order

import (
	"net/http"
	"strconv"

	"github.com/akshayfox/admin-dashboard/internal/httpx"
	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)                      // GET    /api/orders
		r.Post("/", h.placeOrder)                     // POST   /api/orders
		r.Get("/recent", h.recentOrders)              // GET    /api/orders/recent?limit=5
		r.Get("/number/{number}", h.getOrderByNumber) // GET    /api/orders/number/{number}
		r.Get("/{id}", h.getOrder)                    // GET    /api/orders/{id}
		r.Patch("/{id}", h.updateOrder)               // PATCH  /api/orders/{id}
		r.Delete("/{id}", h.deleteOrder)              // DELETE /api/orders/{id}
		r.Get("/{id}/items", h.listItems)             // GET    /api/orders/{id}/items
		r.Post("/{id}/items", h.addItem)              // POST   /api/orders/{id}/items
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		httpx.Error(w, err, "Failed to fetch orders")
		return
	}
	httpx.Respond(w, http.StatusOK, orders)
}

func (h *Handler) recentOrders(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			httpx.Respond(w, http.StatusBadRequest, map[string]string{"message": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	orders, err := h.service.RecentOrders(r.Context(), limit)
	if err != nil {
		httpx.Error(w, err, "Failed to fetch recent orders")
		return
	}
	httpx.Respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to fetch order")
		return
	}
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, "Failed to fetch order")
		return
	}
	httpx.Respond(w, http.StatusOK, o)
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		httpx.Error(w, err, "Failed to fetch order")
		return
	}
	httpx.Respond(w, http.StatusOK, o)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to create order")
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		httpx.Error(w, err, "Failed to create order")
		return
	}
	httpx.Respond(w, http.StatusCreated, o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to update order")
		return
	}
	var req UpdateOrderRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to update order")
		return
	}
	o, err := h.service.UpdateOrder(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err, "Failed to update order")
		return
	}
	httpx.Respond(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to delete order")
		return
	}
	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		httpx.Error(w, err, "Failed to delete order")
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to fetch order items")
		return
	}
	items, err := h.service.ListItems(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, "Failed to fetch order items")
		return
	}
	httpx.Respond(w, http.StatusOK, items)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to add order item")
		return
	}
	var req CartItem
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to add order item")
		return
	}
	it, err := h.service.AddItem(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err, "Failed to add order item")
		return
	}
	httpx.Respond(w, http.StatusCreated, it)
}
