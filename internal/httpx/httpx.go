// Package httpx holds the JSON plumbing shared by the module handlers.
package httpx

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// ErrBadRequest marks malformed or invalid request input.
var ErrBadRequest = errors.New("bad request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Error maps err onto a status code and writes {"message": ...}. Unexpected
// errors are logged and answered with fallback so internals do not leak.
func Error(w http.ResponseWriter, err error, fallback string) {
	status := StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", fallback, err)
		msg = fallback
	}
	Respond(w, status, map[string]string{"message": msg})
}

// StatusCode translates domain errors into HTTP status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON body into dst and runs its validate tags.
func Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %v: %w", err, ErrBadRequest)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid %s: %w", strings.Join(fields, ", "), ErrBadRequest)
		}
		return fmt.Errorf("%v: %w", err, ErrBadRequest)
	}
	return nil
}

// IDParam parses a positive integer URL parameter.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, ErrBadRequest)
	}
	return id, nil
}
