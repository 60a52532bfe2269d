package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	"github.com/4ak45h/Legacy-Planner/pkg/money"
)

// ChatAdvisorUseCase answers planning questions grounded in the user's
// stored analysis. When the generative service is unavailable it falls
// back to a deterministic summary built from the same analysis.
type ChatAdvisorUseCase struct {
	profiles port.ProfileRepository
	advisor  port.AdvisorClient
	logger   *slog.Logger
}

// NewChatAdvisorUseCase wires dependencies. advisor may be nil when the
// generative service is not configured.
func NewChatAdvisorUseCase(profiles port.ProfileRepository, advisor port.AdvisorClient, logger *slog.Logger) *ChatAdvisorUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatAdvisorUseCase{profiles: profiles, advisor: advisor, logger: logger}
}

// Execute requires a saved profile; the chat is always grounded in stored
// figures, never in client-supplied numbers.
func (uc *ChatAdvisorUseCase) Execute(ctx context.Context, userID uuid.UUID, req dto.ChatRequest) (dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return dto.ChatResponse{}, fmt.Errorf("%w: message is required", ErrValidation)
	}

	profile, err := uc.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return dto.ChatResponse{}, fmt.Errorf("%w: save a financial profile before chatting", ErrValidation)
		}
		return dto.ChatResponse{}, fmt.Errorf("lookup profile: %w", err)
	}

	grounding := buildGrounding(profile)

	if uc.advisor != nil {
		reply, err := uc.advisor.Ask(ctx, grounding, req.Message)
		if err == nil {
			return dto.ChatResponse{Reply: reply}, nil
		}
		uc.logger.Warn("advisor unavailable, serving deterministic summary", "error", err)
	}

	return dto.ChatResponse{Reply: fallbackReply(profile)}, nil
}

// buildGrounding stringifies the stored figures into the system context the
// advisor answers from.
func buildGrounding(p model.FinancialProfile) string {
	a := p.Analysis
	var b strings.Builder
	b.WriteString("You are a personal finance advisor. Answer using only the user's stored plan below.\n\n")
	fmt.Fprintf(&b, "Monthly income: %s\n", money.FormatINR(int64(p.MonthlyIncome)))
	fmt.Fprintf(&b, "Monthly expenses: %s\n", money.FormatINR(int64(p.MonthlyExpensesTotal)))
	fmt.Fprintf(&b, "Current savings: %s\n", money.FormatINR(int64(p.CurrentSavings)))
	fmt.Fprintf(&b, "Target property: %s at %s, timeline %v years\n",
		p.Property.Name, money.FormatINR(int64(p.Property.TargetPrice)), p.Property.DesiredTimelineYears)
	fmt.Fprintf(&b, "Affordability score: %d/100\n", a.AffordabilityScore)
	fmt.Fprintf(&b, "Estimated EMI: %s, required monthly savings: %s, savings potential: %s\n",
		money.FormatINR(a.EstimatedEMI),
		money.FormatINR(a.MonthlySavingsRequired),
		money.FormatINR(a.MonthlySavingsPotential))
	b.WriteString("\nStored analysis report:\n")
	b.WriteString(a.AIAnalysisMarkdown)
	return b.String()
}

// fallbackReply is the canned answer used when no generative service can be
// reached. It echoes the stored narrative so the user still gets grounded
// guidance.
func fallbackReply(p model.FinancialProfile) string {
	a := p.Analysis
	return fmt.Sprintf(
		"The advisor service is currently unavailable, so here is your latest plan summary.\n\nAffordability score: **%d/100**. Estimated EMI: **%s** per month. You need to save **%s** monthly against a potential of **%s**.\n\n%s",
		a.AffordabilityScore,
		money.FormatINR(a.EstimatedEMI),
		money.FormatINR(a.MonthlySavingsRequired),
		money.FormatINR(a.MonthlySavingsPotential),
		a.AIAnalysisMarkdown,
	)
}
