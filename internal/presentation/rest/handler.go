package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/4ak45h/Legacy-Planner/internal/application/usecase"
)

// Handler holds the use cases behind the REST API.
type Handler struct {
	registerUser *usecase.RegisterUserUseCase
	loginUser    *usecase.LoginUserUseCase
	saveProfile  *usecase.SaveProfileUseCase
	getProfile   *usecase.GetProfileUseCase
	chatAdvisor  *usecase.ChatAdvisorUseCase
	ledger       *usecase.LedgerUseCase
	will         *usecase.WillUseCase
	contacts     *usecase.ContactUseCase
	snapshot     *usecase.RetrieveSnapshotUseCase
	vault        *usecase.VaultUseCase

	readiness func(ctx context.Context) error
	metrics   http.Handler
}

// Deps are the collaborators the handler needs. Readiness and Metrics are
// optional; when nil, /readyz always reports ready and /metrics returns 404.
type Deps struct {
	RegisterUser *usecase.RegisterUserUseCase
	LoginUser    *usecase.LoginUserUseCase
	SaveProfile  *usecase.SaveProfileUseCase
	GetProfile   *usecase.GetProfileUseCase
	ChatAdvisor  *usecase.ChatAdvisorUseCase
	Ledger       *usecase.LedgerUseCase
	Will         *usecase.WillUseCase
	Contacts     *usecase.ContactUseCase
	Snapshot     *usecase.RetrieveSnapshotUseCase
	Vault        *usecase.VaultUseCase

	Readiness func(ctx context.Context) error
	Metrics   http.Handler
}

// NewHandler creates the REST handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		registerUser: deps.RegisterUser,
		loginUser:    deps.LoginUser,
		saveProfile:  deps.SaveProfile,
		getProfile:   deps.GetProfile,
		chatAdvisor:  deps.ChatAdvisor,
		ledger:       deps.Ledger,
		will:         deps.Will,
		contacts:     deps.Contacts,
		snapshot:     deps.Snapshot,
		vault:        deps.Vault,
		readiness:    deps.Readiness,
		metrics:      deps.Metrics,
	}
}

// RegisterRoutes registers all REST API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /readyz", h.readyz)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", h.register)
	mux.HandleFunc("POST /api/v1/auth/login", h.login)

	// Profile and analysis
	mux.HandleFunc("GET /api/v1/profile/me", h.profileGet)
	mux.HandleFunc("POST /api/v1/profile", h.profileSave)

	// Advisor
	mux.HandleFunc("POST /api/v1/profile/chat", h.chat)

	// Estate ledger
	mux.HandleFunc("GET /api/v1/ledger", h.ledgerList)
	mux.HandleFunc("POST /api/v1/ledger", h.ledgerCreate)
	mux.HandleFunc("PUT /api/v1/ledger/{id}", h.ledgerUpdate)
	mux.HandleFunc("DELETE /api/v1/ledger/{id}", h.ledgerDelete)

	// Will
	mux.HandleFunc("GET /api/v1/will", h.willGet)
	mux.HandleFunc("POST /api/v1/will", h.willUpsert)

	// Legacy contacts; the retrieve route is public, token is the credential.
	mux.HandleFunc("GET /api/v1/contacts", h.contactList)
	mux.HandleFunc("POST /api/v1/contacts", h.contactDesignate)
	mux.HandleFunc("GET /api/v1/contacts/retrieve/{token}", h.snapshotRetrieve)

	// Vault assets
	mux.HandleFunc("GET /api/v1/assets", h.vaultList)
	mux.HandleFunc("POST /api/v1/assets", h.vaultCreate)
	mux.HandleFunc("PUT /api/v1/assets/{id}", h.vaultUpdate)
	mux.HandleFunc("DELETE /api/v1/assets/{id}", h.vaultDelete)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if h.readiness != nil {
		if err := h.readiness(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// PublicPrefixes lists the route prefixes reachable without a bearer token.
func PublicPrefixes() []string {
	return []string{
		"/api/v1/auth/",
		"/api/v1/contacts/retrieve/",
		"/healthz",
		"/readyz",
		"/metrics",
	}
}
