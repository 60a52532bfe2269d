// Package port defines the interfaces between the planner's domain core and
// its driven adapters (persistence, oracle, advisor, messaging, cache).
package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/pkg/events"
)

// ErrNotFound is returned by repositories when the requested record does not
// exist. Adapters translate their driver-level sentinel to this one.
var ErrNotFound = errors.New("not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// UserRepository persists and retrieves accounts.
type UserRepository interface {
	Save(ctx context.Context, user model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

// ProfileRepository persists the single financial profile per user.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile model.FinancialProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (model.FinancialProfile, error)
}

// LedgerRepository persists and retrieves estate-ledger items.
type LedgerRepository interface {
	Save(ctx context.Context, item model.LedgerItem) error
	Update(ctx context.Context, item model.LedgerItem) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (model.LedgerItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.LedgerItem, error)
}

// WillRepository persists the single will record per user.
type WillRepository interface {
	Upsert(ctx context.Context, will model.Will) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (model.Will, error)
}

// ContactRepository persists and retrieves legacy contacts.
type ContactRepository interface {
	Save(ctx context.Context, contact model.LegacyContact) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.LegacyContact, error)
	FindByToken(ctx context.Context, token string) (model.LegacyContact, error)
}

// VaultAssetRepository persists and retrieves vault assets.
type VaultAssetRepository interface {
	Save(ctx context.Context, asset model.VaultAsset) error
	Update(ctx context.Context, asset model.VaultAsset) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (model.VaultAsset, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.VaultAsset, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// OracleRequest is the feature vector sent to the success oracle. TargetPrice
// carries the expected-scenario projected price, not today's price.
type OracleRequest struct {
	MonthlyIncome        float64 `json:"monthlyIncome"`
	CurrentSavings       float64 `json:"currentSavings"`
	MonthlyExpensesTotal float64 `json:"monthlyExpensesTotal"`
	DesiredTimelineYears float64 `json:"desiredTimelineYears"`
	TargetPrice          float64 `json:"targetPrice"`
}

// SuccessOracle scores the probability that a plan succeeds. Implementations
// return the raw value from the model; the engine normalizes fractions vs
// percentages.
type SuccessOracle interface {
	PredictSuccess(ctx context.Context, req OracleRequest) (float64, error)
}

// AdvisorClient answers a free-form planning question grounded in the user's
// stored analysis.
type AdvisorClient interface {
	Ask(ctx context.Context, grounding, question string) (string, error)
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// SnapshotCache holds rendered legacy snapshots keyed by verification token,
// so repeated retrievals by a contact skip the profile re-read.
type SnapshotCache interface {
	Get(ctx context.Context, token string) ([]byte, bool, error)
	Set(ctx context.Context, token string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, token string) error
}
