package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction categories with ledger side effects. Any other category is
// treated as plain spending.
const (
	CategoryTopUp         = "top-up"
	CategorySaveToSavings = "save-to-savings"
)

// Transaction represents a single immutable money movement for a student
type Transaction struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StudentID   uuid.UUID `json:"student_id" db:"student_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Category    string    `json:"category" db:"category"`
	Merchant    string    `json:"merchant" db:"merchant"`
	Source      string    `json:"source" db:"source"`
	RiskScore   *int      `json:"risk_score,omitempty" db:"risk_score"`
	FraudFlag   *bool     `json:"fraud_flag,omitempty" db:"fraud_flag"`
	FraudReason *string   `json:"fraud_reason,omitempty" db:"fraud_reason"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateTransactionRequest is the payload for submitting a transaction
type CreateTransactionRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Merchant    string    `json:"merchant"`
	Source      string    `json:"source"`
	RiskScore   *int      `json:"risk_score,omitempty"`
	FraudFlag   *bool     `json:"fraud_flag,omitempty"`
	FraudReason *string   `json:"fraud_reason,omitempty"`
}

// TransactionEvent is published after a transaction record is committed
type TransactionEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
}

// LedgerWarningEvent is published when the best-effort wallet/leaderboard
// update fails after the transaction itself was committed.
type LedgerWarningEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
}
