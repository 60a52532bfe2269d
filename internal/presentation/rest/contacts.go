package rest

import (
	"net/http"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
)

func (h *Handler) contactList(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	contacts, err := h.contacts.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *Handler) contactDesignate(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Msg: "unauthorized"})
		return
	}

	var req dto.DesignateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Msg: "invalid request body"})
		return
	}

	contact, err := h.contacts.Designate(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

// snapshotRetrieve is the public endpoint a legacy contact hits with their
// emailed token. No session required; an unknown token reads as 404 so the
// route cannot be probed for valid users.
func (h *Handler) snapshotRetrieve(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Msg: "missing token"})
		return
	}

	snapshot, err := h.snapshot.Execute(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
