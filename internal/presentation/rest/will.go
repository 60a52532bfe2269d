package rest

import (
	"net/http"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
)

func (h *Handler) willGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	will, err := h.will.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, will)
}

// willUpsert creates the will on first submission and revises it afterwards.
// Revisions must carry the account password; the use case enforces that.
func (h *Handler) willUpsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	var req dto.UpsertWillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Msg: "invalid request body"})
		return
	}

	will, err := h.will.Upsert(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, will)
}
