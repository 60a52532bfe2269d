package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// ContactUseCase designates and lists legacy contacts.
type ContactUseCase struct {
	contacts  port.ContactRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewContactUseCase wires dependencies.
func NewContactUseCase(contacts port.ContactRepository, publisher port.EventPublisher, logger *slog.Logger) *ContactUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactUseCase{contacts: contacts, publisher: publisher, logger: logger}
}

// Designate creates a new contact with a fresh verification token. The same
// email cannot be designated twice by one user.
func (uc *ContactUseCase) Designate(ctx context.Context, userID uuid.UUID, req dto.DesignateContactRequest) (model.LegacyContact, error) {
	existing, err := uc.contacts.FindByUserID(ctx, userID)
	if err != nil {
		return model.LegacyContact{}, fmt.Errorf("list contacts: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.ContactEmail, req.ContactEmail) {
			return model.LegacyContact{}, ErrContactExists
		}
	}

	contact, err := model.NewLegacyContact(userID, req.ContactName, req.ContactEmail, time.Now().UTC())
	if err != nil {
		return model.LegacyContact{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := uc.contacts.Save(ctx, contact); err != nil {
		return model.LegacyContact{}, fmt.Errorf("save contact: %w", err)
	}

	// Token delivery is out of band; until the mailer exists we log it the
	// way an operator would expect to find it.
	uc.logger.Info("legacy retrieval token issued",
		"contact_email", contact.ContactEmail, "token", contact.VerificationToken)

	if err := uc.publisher.Publish(ctx, event.NewContactDesignated(contact.ID, contact.ContactEmail)); err != nil {
		return model.LegacyContact{}, fmt.Errorf("publish events: %w", err)
	}
	return contact, nil
}

// List returns the user's designated contacts, newest first.
func (uc *ContactUseCase) List(ctx context.Context, userID uuid.UUID) ([]model.LegacyContact, error) {
	contacts, err := uc.contacts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []model.LegacyContact{}
	}
	return contacts, nil
}
