package model

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks a legacy-contact designation through its lifecycle.
type ContactStatus string

const (
	// ContactPending means the contact has been invited.
	ContactPending ContactStatus = "Pending"
	// ContactAccepted means the contact acknowledged the designation.
	ContactAccepted ContactStatus = "Accepted"
	// ContactActive means the contact has used their token to retrieve data.
	ContactActive ContactStatus = "Active"
)

// LegacyContact is a person a user designates to retrieve a snapshot of the
// plan after the fact, via an unguessable verification token.
type LegacyContact struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"userId"`
	ContactName       string        `json:"contactName"`
	ContactEmail      string        `json:"contactEmail"`
	Status            ContactStatus `json:"status"`
	VerificationToken string        `json:"verificationToken"`
	DateDesignated    time.Time     `json:"dateDesignated"`
}

// NewLegacyContact designates a contact with a fresh random retrieval token.
func NewLegacyContact(userID uuid.UUID, name, email string, now time.Time) (LegacyContact, error) {
	if name == "" {
		return LegacyContact{}, errors.New("contact name is required")
	}
	if email == "" {
		return LegacyContact{}, errors.New("contact email is required")
	}

	token, err := newVerificationToken()
	if err != nil {
		return LegacyContact{}, err
	}

	return LegacyContact{
		ID:                uuid.New(),
		UserID:            userID,
		ContactName:       name,
		ContactEmail:      email,
		Status:            ContactPending,
		VerificationToken: token,
		DateDesignated:    now,
	}, nil
}

// newVerificationToken returns 32 random bytes hex-encoded.
func newVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
