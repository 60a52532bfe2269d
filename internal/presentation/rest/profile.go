package rest

import (
	"net/http"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
)

func (h *Handler) profileGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	profile, err := h.getProfile.Execute(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// profileSave stores the submitted profile and returns it with a fresh
// affordability analysis attached. The analysis runs synchronously so the
// client always reads back current numbers.
func (h *Handler) profileSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	var req dto.SaveProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Msg: "invalid request body"})
		return
	}

	profile, err := h.saveProfile.Execute(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	var req dto.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Msg: "invalid request body"})
		return
	}

	resp, err := h.chatAdvisor.Execute(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
