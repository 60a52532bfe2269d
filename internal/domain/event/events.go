// Package event defines the planner's domain events. Events are published
// after state changes commit and carry only what downstream consumers need.
package event

import (
	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/pkg/events"
)

const (
	TypeUserRegistered    = "planner.user.registered"
	TypeProfileAnalyzed   = "planner.profile.analyzed"
	TypeContactDesignated = "planner.contact.designated"
	TypeSnapshotRetrieved = "planner.snapshot.retrieved"
	TypeWillUpdated       = "planner.will.updated"
)

// UserRegistered is emitted when a new account is created.
type UserRegistered struct {
	events.BaseEvent
	Email string `json:"email"`
}

func NewUserRegistered(userID uuid.UUID, email string) UserRegistered {
	return UserRegistered{
		BaseEvent: events.NewBaseEvent(TypeUserRegistered, userID, "User"),
		Email:     email,
	}
}

// ProfileAnalyzed is emitted every time the affordability engine runs over a
// saved profile.
type ProfileAnalyzed struct {
	events.BaseEvent
	AffordabilityScore int  `json:"affordabilityScore"`
	OracleUsed         bool `json:"oracleUsed"`
}

func NewProfileAnalyzed(userID uuid.UUID, score int, oracleUsed bool) ProfileAnalyzed {
	return ProfileAnalyzed{
		BaseEvent:          events.NewBaseEvent(TypeProfileAnalyzed, userID, "FinancialProfile"),
		AffordabilityScore: score,
		OracleUsed:         oracleUsed,
	}
}

// ContactDesignated is emitted when a user names a legacy contact.
type ContactDesignated struct {
	events.BaseEvent
	ContactEmail string `json:"contactEmail"`
}

func NewContactDesignated(contactID uuid.UUID, contactEmail string) ContactDesignated {
	return ContactDesignated{
		BaseEvent:    events.NewBaseEvent(TypeContactDesignated, contactID, "LegacyContact"),
		ContactEmail: contactEmail,
	}
}

// SnapshotRetrieved is emitted when a legacy contact redeems their token and
// pulls the owner's financial snapshot.
type SnapshotRetrieved struct {
	events.BaseEvent
	OwnerID uuid.UUID `json:"ownerId"`
}

func NewSnapshotRetrieved(contactID, ownerID uuid.UUID) SnapshotRetrieved {
	return SnapshotRetrieved{
		BaseEvent: events.NewBaseEvent(TypeSnapshotRetrieved, contactID, "LegacyContact"),
		OwnerID:   ownerID,
	}
}

// WillUpdated is emitted when a will is created or revised.
type WillUpdated struct {
	events.BaseEvent
	Reason string `json:"reason"`
}

func NewWillUpdated(willID uuid.UUID, reason string) WillUpdated {
	return WillUpdated{
		BaseEvent: events.NewBaseEvent(TypeWillUpdated, willID, "Will"),
		Reason:    reason,
	}
}
