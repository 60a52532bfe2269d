// Package rest exposes the planner's HTTP API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/application/usecase"
	"github.com/4ak45h/Legacy-Planner/pkg/auth"
)

// errorResponse is the JSON error envelope. The web client reads "msg".
type errorResponse struct {
	Msg string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("encode response", "error", err)
		}
	}
}

// writeError maps application errors to HTTP statuses. Unrecognized errors
// become an opaque 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrWeakPassword),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrPasswordRequired),
		errors.Is(err, usecase.ErrContactExists):
		writeJSON(w, http.StatusBadRequest, errorResponse{Msg: err.Error()})
	case errors.Is(err, usecase.ErrIncorrectPassword):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: err.Error()})
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrInvalidToken):
		writeJSON(w, http.StatusNotFound, errorResponse{Msg: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Msg: "server error"})
	}
}

// decodeJSON parses the request body into dst. A malformed body is a client
// error, reported as 400 by the caller.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// userIDFromRequest pulls the authenticated user out of the claims that the
// auth middleware attached. Protected routes are only reachable through that
// middleware, so a missing claim means a wiring bug, not a client mistake.
func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
