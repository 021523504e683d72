package auth

import (
	"net/http"
	"strings"

	"github.com/akshayfox/admin-dashboard/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes login, logout and the current-account endpoint.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/me", h.me)
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Respond(w, http.StatusBadRequest, map[string]string{"message": "Username and password are required"})
		return
	}
	session, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.Error(w, err, "Internal server error")
		return
	}
	httpx.Respond(w, http.StatusOK, session)
}

// logout is a no-op: tokens are stateless and simply dropped by the client.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	httpx.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	u, err := h.service.Me(r.Context(), strings.TrimSpace(token))
	if err != nil {
		httpx.Error(w, err, "Internal server error")
		return
	}
	httpx.Respond(w, http.StatusOK, u)
}
