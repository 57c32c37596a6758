package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bankdemo/internal/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// writeAppError maps the business error taxonomy onto HTTP statuses.
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrMissingField),
		errors.Is(err, app.ErrInvalidAmount),
		errors.Is(err, app.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, app.ErrInvalidCredentials),
		errors.Is(err, app.ErrSessionNotFound),
		errors.Is(err, app.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, app.ErrUsernameTaken):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, app.ErrInsufficientFunds):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
