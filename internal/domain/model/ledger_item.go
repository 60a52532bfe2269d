package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerType classifies a ledger item.
type LedgerType string

const (
	LedgerAsset     LedgerType = "asset"
	LedgerLiability LedgerType = "liability"
	LedgerOther     LedgerType = "other"
)

// IsValid reports whether t is one of the known ledger types.
func (t LedgerType) IsValid() bool {
	switch t {
	case LedgerAsset, LedgerLiability, LedgerOther:
		return true
	}
	return false
}

// LedgerItem is a single entry in a user's estate ledger.
type LedgerItem struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Type        LedgerType      `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	AcquiredAt  time.Time       `json:"acquiredAt"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewLedgerItem creates a ledger item, applying the defaults the planner has
// always used (type asset, currency INR, acquisition now).
func NewLedgerItem(userID uuid.UUID, title string, value decimal.Decimal, itemType LedgerType, description string, acquiredAt, now time.Time) (LedgerItem, error) {
	if title == "" {
		return LedgerItem{}, errors.New("title is required")
	}
	if value.IsZero() {
		return LedgerItem{}, errors.New("value is required")
	}
	if itemType == "" {
		itemType = LedgerAsset
	}
	if !itemType.IsValid() {
		return LedgerItem{}, errors.New("invalid ledger type")
	}
	if acquiredAt.IsZero() {
		acquiredAt = now
	}

	return LedgerItem{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        itemType,
		Title:       title,
		Description: description,
		Value:       value,
		Currency:    "INR",
		AcquiredAt:  acquiredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// LedgerTotals aggregates item values per type plus a grand total.
type LedgerTotals struct {
	Asset     decimal.Decimal `json:"asset"`
	Liability decimal.Decimal `json:"liability"`
	Other     decimal.Decimal `json:"other"`
	Total     decimal.Decimal `json:"total"`
}

// SumLedger computes per-type and grand totals over the given items.
func SumLedger(items []LedgerItem) LedgerTotals {
	totals := LedgerTotals{
		Asset:     decimal.Zero,
		Liability: decimal.Zero,
		Other:     decimal.Zero,
		Total:     decimal.Zero,
	}
	for _, item := range items {
		switch item.Type {
		case LedgerAsset:
			totals.Asset = totals.Asset.Add(item.Value)
		case LedgerLiability:
			totals.Liability = totals.Liability.Add(item.Value)
		default:
			totals.Other = totals.Other.Add(item.Value)
		}
		totals.Total = totals.Total.Add(item.Value)
	}
	return totals
}
