package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// RetrieveSnapshotUseCase serves the public, token-gated retrieval of a
// user's plan by a designated legacy contact. First successful retrieval
// flips the contact to Active; the rendered snapshot is cached by token so
// repeated pulls skip the profile read.
type RetrieveSnapshotUseCase struct {
	contacts  port.ContactRepository
	profiles  port.ProfileRepository
	cache     port.SnapshotCache
	publisher port.EventPublisher
	logger    *slog.Logger
	cacheTTL  time.Duration
}

// NewRetrieveSnapshotUseCase wires dependencies. cache may be nil to disable
// snapshot caching.
func NewRetrieveSnapshotUseCase(
	contacts port.ContactRepository,
	profiles port.ProfileRepository,
	cache port.SnapshotCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
	cacheTTL time.Duration,
) *RetrieveSnapshotUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetrieveSnapshotUseCase{
		contacts:  contacts,
		profiles:  profiles,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Execute resolves the token to a snapshot. Unknown tokens and missing
// profiles both come back as ErrInvalidToken so the endpoint does not leak
// which tokens exist.
func (uc *RetrieveSnapshotUseCase) Execute(ctx context.Context, token string) (dto.SnapshotResponse, error) {
	if cached, ok := uc.cacheGet(ctx, token); ok {
		return cached, nil
	}

	contact, err := uc.contacts.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return dto.SnapshotResponse{}, ErrInvalidToken
		}
		return dto.SnapshotResponse{}, fmt.Errorf("lookup token: %w", err)
	}

	profile, err := uc.profiles.FindByUserID(ctx, contact.UserID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return dto.SnapshotResponse{}, ErrInvalidToken
		}
		return dto.SnapshotResponse{}, fmt.Errorf("lookup profile: %w", err)
	}

	if contact.Status != model.ContactActive {
		if err := uc.contacts.UpdateStatus(ctx, contact.ID, model.ContactActive); err != nil {
			return dto.SnapshotResponse{}, fmt.Errorf("activate contact: %w", err)
		}
		contact.Status = model.ContactActive
	}

	snapshot := dto.SnapshotResponse{
		Status:        contact.Status,
		UserProfile:   profile.FullName,
		RetrievedData: profile.Property,
		FullAnalysis:  profile.Analysis,
	}

	uc.cacheSet(ctx, token, snapshot)

	if err := uc.publisher.Publish(ctx, event.NewSnapshotRetrieved(contact.ID, contact.UserID)); err != nil {
		return dto.SnapshotResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return snapshot, nil
}

func (uc *RetrieveSnapshotUseCase) cacheGet(ctx context.Context, token string) (dto.SnapshotResponse, bool) {
	if uc.cache == nil {
		return dto.SnapshotResponse{}, false
	}
	payload, ok, err := uc.cache.Get(ctx, token)
	if err != nil {
		uc.logger.Warn("snapshot cache read failed", "error", err)
		return dto.SnapshotResponse{}, false
	}
	if !ok {
		return dto.SnapshotResponse{}, false
	}
	var snapshot dto.SnapshotResponse
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		uc.logger.Warn("snapshot cache entry corrupt, dropping", "error", err)
		_ = uc.cache.Invalidate(ctx, token)
		return dto.SnapshotResponse{}, false
	}
	return snapshot, true
}

func (uc *RetrieveSnapshotUseCase) cacheSet(ctx context.Context, token string, snapshot dto.SnapshotResponse) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, token, payload, uc.cacheTTL); err != nil {
		uc.logger.Warn("snapshot cache write failed", "error", err)
	}
}
