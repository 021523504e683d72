package user

import (
	"net/http"

	"github.com/akshayfox/admin-dashboard/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes user HTTP endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)                      // GET    /api/users
		r.Post("/", h.createUser)                    // POST   /api/users
		r.Get("/profile", h.getProfile)              // GET    /api/users/profile
		r.Post("/change-password", h.changePassword) // POST   /api/users/change-password
		r.Get("/{id}", h.getUser)                    // GET    /api/users/{id}
		r.Patch("/{id}", h.updateUser)               // PATCH  /api/users/{id}
		r.Delete("/{id}", h.deleteUser)              // DELETE /api/users/{id}
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httpx.Error(w, err, "Failed to fetch users")
		return
	}
	httpx.Respond(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to fetch user")
		return
	}
	u, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, "Failed to fetch user")
		return
	}
	httpx.Respond(w, http.StatusOK, u)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetProfile(r.Context())
	if err != nil {
		httpx.Error(w, err, "Failed to fetch profile")
		return
	}
	httpx.Respond(w, http.StatusOK, u)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to create user")
		return
	}
	u, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		httpx.Error(w, err, "Failed to create user")
		return
	}
	httpx.Respond(w, http.StatusCreated, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to update user")
		return
	}
	var req UpdateUserRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to update user")
		return
	}
	u, err := h.service.UpdateUser(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, err, "Failed to update user")
		return
	}
	httpx.Respond(w, http.StatusOK, u)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, err, "Failed to delete user")
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		httpx.Error(w, err, "Failed to delete user")
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err, "Failed to change password")
		return
	}
	if err := h.service.ChangePassword(r.Context(), DemoUsername, req); err != nil {
		httpx.Error(w, err, "Failed to change password")
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
