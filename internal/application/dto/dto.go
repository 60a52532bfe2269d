// Package dto defines the request and response payloads of the planner API.
// Field names are camelCase because the web client and the public retrieval
// endpoint echo them verbatim.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RegisterRequest carries a new account's credentials.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveProfileRequest is the full profile submission. Saving always re-runs
// the affordability analysis; MonthlyExpensesTotal is derived server-side
// from the budget breakdown, never taken from the client.
type SaveProfileRequest struct {
	FullName       string `json:"fullName"`
	Age            int    `json:"age"`
	FamilySize     int    `json:"familySize"`
	EmploymentType string `json:"employmentType"`

	MonthlyIncome       float64 `json:"monthlyIncome"`
	AnnualIncome        float64 `json:"annualIncome"`
	CurrentSavings      float64 `json:"currentSavings"`
	InvestmentPortfolio float64 `json:"investmentPortfolio"`
	CreditScore         int     `json:"creditScore"`

	Budget   model.Budget   `json:"budget"`
	Property model.Property `json:"property"`
}

// ChatRequest is a free-form question for the advisor.
type ChatRequest struct {
	Message string `json:"message"`
}

// CreateLedgerItemRequest adds an estate-ledger entry.
type CreateLedgerItemRequest struct {
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	AcquiredAt  time.Time       `json:"acquiredAt"`
	Tags        []string        `json:"tags"`
}

// UpdateLedgerItemRequest revises an existing ledger entry.
type UpdateLedgerItemRequest struct {
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	AcquiredAt  time.Time       `json:"acquiredAt"`
	Tags        []string        `json:"tags"`
}

// UpsertWillRequest creates or revises the will record. Password is required
// only when a will already exists; Reason defaults to "Initial Draft" on
// first creation.
type UpsertWillRequest struct {
	Location      string `json:"location"`
	ExecutorName  string `json:"executorName"`
	ExecutorPhone string `json:"executorPhone"`
	LawyerName    string `json:"lawyerName"`
	LawyerContact string `json:"lawyerContact"`
	Notes         string `json:"notes"`
	Reason        string `json:"reason"`
	Password      string `json:"password"`
}

// DesignateContactRequest names a legacy contact.
type DesignateContactRequest struct {
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
}

// SaveVaultAssetRequest creates or updates a vault asset.
type SaveVaultAssetRequest struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	PrimaryData string `json:"primaryData"`
	Notes       string `json:"notes"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// AuthResponse carries the signed token after register or login.
type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

// ChatResponse carries the advisor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// LedgerListResponse returns a user's ledger with per-type totals.
type LedgerListResponse struct {
	Items  []model.LedgerItem `json:"items"`
	Totals model.LedgerTotals `json:"totals"`
}

// SnapshotResponse is what a legacy contact receives when redeeming their
// verification token. FullAnalysis includes aiAnalysisMarkdown verbatim.
type SnapshotResponse struct {
	Status        model.ContactStatus  `json:"status"`
	UserProfile   string               `json:"userProfile"`
	RetrievedData model.Property       `json:"retrievedData"`
	FullAnalysis  model.AnalysisResult `json:"fullAnalysis"`
}
