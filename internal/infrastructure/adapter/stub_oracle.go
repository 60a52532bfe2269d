package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// StubOracle is a development/test adapter that returns a deterministic
// success probability derived from the feature vector. It implements
// port.SuccessOracle, so environments without the prediction service still
// get blended scores with repeatable values.
type StubOracle struct{}

// NewStubOracle creates a new stub adapter.
func NewStubOracle() *StubOracle {
	return &StubOracle{}
}

// PredictSuccess hashes the features into a fraction in [0.05, 0.95], then
// nudges it by the savings-to-target ratio so better-funded plans score
// higher. Savings stay out of the hashed base: they only contribute through
// the funding bonus, which keeps the score monotone in savings for otherwise
// identical plans.
func (o *StubOracle) PredictSuccess(_ context.Context, req port.OracleRequest) (float64, error) {
	seed := fmt.Sprintf("%.0f|%.0f|%.1f|%.0f",
		req.MonthlyIncome, req.MonthlyExpensesTotal,
		req.DesiredTimelineYears, req.TargetPrice)

	h := sha256.Sum256([]byte(seed))
	base := 0.05 + float64(binary.BigEndian.Uint32(h[:4])%61)/100 // [0.05, 0.65]

	if req.TargetPrice > 0 {
		funded := req.CurrentSavings / req.TargetPrice
		base += math.Min(funded, 0.3)
	}
	return math.Min(base, 0.95), nil
}
