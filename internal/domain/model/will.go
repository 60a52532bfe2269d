package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Will records where a user's will is kept and who executes it. One per user.
type Will struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Location         string    `json:"location"`
	ExecutorName     string    `json:"executorName"`
	ExecutorPhone    string    `json:"executorPhone"`
	LawyerName       string    `json:"lawyerName"`
	LawyerContact    string    `json:"lawyerContact"`
	Notes            string    `json:"notes"`
	LastUpdateReason string    `json:"lastUpdateReason"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// NewWill creates a first will draft.
func NewWill(userID uuid.UUID, location, executorName string, now time.Time) (Will, error) {
	if location == "" {
		return Will{}, errors.New("location is required")
	}
	if executorName == "" {
		return Will{}, errors.New("executor name is required")
	}
	return Will{
		ID:               uuid.New(),
		UserID:           userID,
		Location:         location,
		ExecutorName:     executorName,
		LawyerName:       "N/A",
		LawyerContact:    "N/A",
		LastUpdateReason: "Initial Draft",
		LastUpdated:      now,
	}, nil
}
