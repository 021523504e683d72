package dashboard

import (
	"net/http"

	"github.com/akshayfox/admin-dashboard/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the dashboard aggregates.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", h.stats)
		r.Get("/top-products", h.topProducts)
		r.Get("/sales", h.sales) // ?timeRange=weekly|monthly|yearly
	})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		httpx.Error(w, err, "Failed to fetch dashboard stats")
		return
	}
	httpx.Respond(w, http.StatusOK, stats)
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.TopProducts(r.Context())
	if err != nil {
		httpx.Error(w, err, "Failed to fetch top products")
		return
	}
	httpx.Respond(w, http.StatusOK, products)
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.Sales(r.Context(), r.URL.Query().Get("timeRange"))
	if err != nil {
		httpx.Error(w, err, "Failed to fetch sales data")
		return
	}
	httpx.Respond(w, http.StatusOK, points)
}
