package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is a registered planner account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser creates a user record. The caller is responsible for having
// validated the email format and hashed the password.
func NewUser(email, passwordHash string, now time.Time) (User, error) {
	if email == "" {
		return User{}, errors.New("email is required")
	}
	if passwordHash == "" {
		return User{}, errors.New("password hash is required")
	}
	return User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}
