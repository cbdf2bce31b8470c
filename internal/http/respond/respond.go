// Package respond centralizes JSON response encoding and error-to-status
// mapping for the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/evensplit/evensplit/internal/auth"
	"github.com/evensplit/evensplit/internal/calculator"
	"github.com/evensplit/evensplit/internal/service"
	"github.com/evensplit/evensplit/internal/storage"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorResponse{Error: msg})
}

// Err maps a service or storage error to an HTTP status and writes it as a
// JSON error body. Unknown errors become 500 with a generic message so
// internal details do not leak to clients.
func Err(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotBillCreator):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUsernameExists),
		errors.Is(err, auth.ErrEmailExists):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, calculator.ErrNonPositiveAmount),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrAmountSum),
		errors.Is(err, calculator.ErrPercentSum),
		errors.Is(err, calculator.ErrShareMismatch),
		errors.Is(err, calculator.ErrUnknownSplitType),
		errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrSelfFriendship),
		errors.Is(err, service.ErrUnknownUser),
		errors.Is(err, service.ErrEmptyGroupName),
		errors.Is(err, service.ErrEmptyDescription),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidRecurrence),
		errors.Is(err, service.ErrNonPositiveSettlement),
		errors.Is(err, service.ErrSelfSettlement):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed with internal error", "error", err)
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
