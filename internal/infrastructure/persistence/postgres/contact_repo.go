package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	pgshared "github.com/4ak45h/Legacy-Planner/pkg/postgres"
)

// ContactRepo implements port.ContactRepository.
type ContactRepo struct {
	db pgshared.Querier
}

// NewContactRepo creates a new repository backed by PostgreSQL.
func NewContactRepo(db pgshared.Querier) *ContactRepo {
	return &ContactRepo{db: db}
}

// Save inserts a new designation.
func (r *ContactRepo) Save(ctx context.Context, contact model.LegacyContact) error {
	query := `
		INSERT INTO legacy_contacts (
			id, user_id, contact_name, contact_email, status,
			verification_token, date_designated
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	if _, err := r.db.Exec(ctx, query,
		contact.ID, contact.UserID, contact.ContactName, contact.ContactEmail,
		string(contact.Status), contact.VerificationToken, contact.DateDesignated,
	); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	return nil
}

// UpdateStatus moves a contact through its lifecycle.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE legacy_contacts SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// FindByUserID retrieves a user's contacts, newest designation first.
func (r *ContactRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.LegacyContact, error) {
	query := `
		SELECT id, user_id, contact_name, contact_email, status,
		       verification_token, date_designated
		FROM legacy_contacts
		WHERE user_id = $1
		ORDER BY date_designated DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.LegacyContact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// FindByToken resolves a verification token to its contact.
func (r *ContactRepo) FindByToken(ctx context.Context, token string) (model.LegacyContact, error) {
	query := `
		SELECT id, user_id, contact_name, contact_email, status,
		       verification_token, date_designated
		FROM legacy_contacts
		WHERE verification_token = $1
	`
	contact, err := scanContact(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LegacyContact{}, port.ErrNotFound
		}
		return model.LegacyContact{}, fmt.Errorf("query contact by token: %w", err)
	}
	return contact, nil
}

func scanContact(s scannable) (model.LegacyContact, error) {
	var (
		contact model.LegacyContact
		status  string
	)
	err := s.Scan(
		&contact.ID, &contact.UserID, &contact.ContactName, &contact.ContactEmail,
		&status, &contact.VerificationToken, &contact.DateDesignated,
	)
	if err != nil {
		return model.LegacyContact{}, err
	}
	contact.Status = model.ContactStatus(status)
	return contact, nil
}
