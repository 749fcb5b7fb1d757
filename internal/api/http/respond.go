package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mind-engage/mindengage-rounds/internal/form"
	"github.com/mind-engage/mindengage-rounds/internal/hub"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, hub.ErrNoSession), errors.Is(err, form.ErrUnknownField):
		return http.StatusNotFound
	case errors.Is(err, hub.ErrUnknownKind), errors.Is(err, form.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, form.ErrSubmitted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondErr(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
