package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VaultAsset is an entry in the legacy vault: a pointer to something a
// designated contact will need to find (an account, a document, a safe).
type VaultAsset struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	PrimaryData string    `json:"primaryData"`
	Notes       string    `json:"notes"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewVaultAsset creates a vault asset.
func NewVaultAsset(userID uuid.UUID, category, name, primaryData, notes string, now time.Time) (VaultAsset, error) {
	if category == "" {
		return VaultAsset{}, errors.New("category is required")
	}
	if name == "" {
		return VaultAsset{}, errors.New("name is required")
	}
	if primaryData == "" {
		return VaultAsset{}, errors.New("primary data is required")
	}
	return VaultAsset{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		Name:        name,
		PrimaryData: primaryData,
		Notes:       notes,
		UpdatedAt:   now,
	}, nil
}
