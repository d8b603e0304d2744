package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/prasanth-t0205/techblog/internal/domain/errors"
)

// writeErr sends JSON { "error": message }.
func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeMessage sends JSON { "message": message }.
func writeMessage(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusForErr maps domain sentinel errors to HTTP status. The second
// return is false for unexpected errors, which the handlers surface as
// a generic 500 and log server-side.
func statusForErr(err error) (int, bool) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidEmail),
		errors.Is(err, domerrors.ErrUsernameExists),
		errors.Is(err, domerrors.ErrEmailExists),
		errors.Is(err, domerrors.ErrPasswordTooShort),
		errors.Is(err, domerrors.ErrInvalidCredentials),
		errors.Is(err, domerrors.ErrWrongPassword),
		errors.Is(err, domerrors.ErrSelfFollow),
		errors.Is(err, domerrors.ErrMissingPostFields),
		errors.Is(err, domerrors.ErrMissingPostImage):
		return http.StatusBadRequest, true
	case errors.Is(err, domerrors.ErrUserNotFound),
		errors.Is(err, domerrors.ErrPostNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domerrors.ErrNotPostOwner):
		return http.StatusUnauthorized, true
	default:
		return http.StatusInternalServerError, false
	}
}
