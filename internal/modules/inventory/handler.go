package inventory

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akshayfox/admin-dashboard/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", h.levels)
		r.Get("/low-stock", h.lowStock) // ?threshold=10
		r.Patch("/products/{id}/stock", h.updateStock)
		r.Post("/products/{id}/adjust", h.adjustStock)
	})
}

func (h *Handler) levels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.Levels(r.Context())
	if err != nil {
		httpx.Error(w, err, "Failed to fetch inventory")
		return
	}
	httpx.Respond(w, http.StatusOK, levels)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 0
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			httpx.Error(w, fmt.Errorf("threshold %q must be a positive integer: %w", v, httpx.ErrBadRequest), "Invalid threshold")
			return
		}
		threshold = n
	}
	levels, err := h.service.LowStock(r.Context(), threshold)
	if err != nil {
		httpx.Error(w, err, "Failed to fetch inventory")
		return
	}
	httpx.Respond(w, http.StatusOK, levels)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to update stock")
		return
	}
	var req SetStockRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to update stock")
		return
	}
	level, err := h.service.UpdateStock(r.Context(), id, *req.Quantity)
	if err != nil {
		httpx.Error(w, err, "Failed to update stock")
		return
	}
	httpx.Respond(w, http.StatusOK, level)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to adjust stock")
		return
	}
	var req AdjustStockRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to adjust stock")
		return
	}
	level, err := h.service.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		httpx.Error(w, err, "Failed to adjust stock")
		return
	}
	httpx.Respond(w, http.StatusOK, level)
}
