package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget periods determining the rollup window
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Budget status classifications for spend vs. limit
const (
	BudgetStatusUnder = "under"
	BudgetStatusNear  = "near"
	BudgetStatusOver  = "over"
)

// Budget is a spending limit for one category over one recurring period.
// A user can have at most one budget per (category, period) pair.
type Budget struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Category    string    `json:"category" db:"category"`
	Period      string    `json:"period" db:"period"`
	LimitAmount float64   `json:"limit_amount" db:"limit_amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateBudgetRequest is the payload for creating a budget
type CreateBudgetRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Category    string    `json:"category"`
	Period      string    `json:"period"`
	LimitAmount float64   `json:"limit_amount"`
}

// BudgetStatus is one budget's spend-vs-limit rollup for the current window
type BudgetStatus struct {
	BudgetID       uuid.UUID `json:"budget_id"`
	Category       string    `json:"category"`
	Period         string    `json:"period"`
	BudgetLimit    float64   `json:"budget_limit"`
	Spent          float64   `json:"spent"`
	Remaining      float64   `json:"remaining"`
	PercentageUsed float64   `json:"percentage_used"`
	Status         string    `json:"status"`
}

// SpendingTracker is the per-user rollup response
type SpendingTracker struct {
	UserID  uuid.UUID      `json:"user_id"`
	Budgets []BudgetStatus `json:"budgets"`
	Message string         `json:"message,omitempty"`
}
