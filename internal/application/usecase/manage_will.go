package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// WillUseCase reads and revises the single will record per user. Revising an
// existing will requires the account password again; the first draft does not.
type WillUseCase struct {
	wills     port.WillRepository
	users     port.UserRepository
	publisher port.EventPublisher
}

// NewWillUseCase wires dependencies.
func NewWillUseCase(wills port.WillRepository, users port.UserRepository, publisher port.EventPublisher) *WillUseCase {
	return &WillUseCase{wills: wills, users: users, publisher: publisher}
}

// Get returns the user's will, or ErrNotFound.
func (uc *WillUseCase) Get(ctx context.Context, userID uuid.UUID) (model.Will, error) {
	will, err := uc.wills.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.Will{}, ErrNotFound
		}
		return model.Will{}, fmt.Errorf("lookup will: %w", err)
	}
	return will, nil
}

// Upsert creates the first draft freely; overwriting an existing will is
// allowed only after the password re-check.
func (uc *WillUseCase) Upsert(ctx context.Context, userID uuid.UUID, req dto.UpsertWillRequest) (model.Will, error) {
	now := time.Now().UTC()

	existing, err := uc.wills.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		if req.Password == "" {
			return model.Will{}, ErrPasswordRequired
		}
		user, err := uc.users.FindByID(ctx, userID)
		if err != nil {
			return model.Will{}, fmt.Errorf("lookup user: %w", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			return model.Will{}, ErrIncorrectPassword
		}
	case errors.Is(err, port.ErrNotFound):
		existing = model.Will{}
	default:
		return model.Will{}, fmt.Errorf("lookup will: %w", err)
	}

	will, err := model.NewWill(userID, req.Location, req.ExecutorName, now)
	if err != nil {
		return model.Will{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if existing.ID != uuid.Nil {
		will.ID = existing.ID
	}
	will.ExecutorPhone = req.ExecutorPhone
	if req.LawyerName != "" {
		will.LawyerName = req.LawyerName
	}
	if req.LawyerContact != "" {
		will.LawyerContact = req.LawyerContact
	}
	will.Notes = req.Notes
	if req.Reason != "" {
		will.LastUpdateReason = req.Reason
	}

	if err := uc.wills.Upsert(ctx, will); err != nil {
		return model.Will{}, fmt.Errorf("save will: %w", err)
	}

	if err := uc.publisher.Publish(ctx, event.NewWillUpdated(will.ID, will.LastUpdateReason)); err != nil {
		return model.Will{}, fmt.Errorf("publish events: %w", err)
	}
	return will, nil
}
