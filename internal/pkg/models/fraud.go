package models

import "github.com/google/uuid"

// FraudCheckRequest is a candidate transaction plus the contextual aggregates
// the caller already has: the payer's historical average amount and the count
// of their transactions in the trailing 10 minutes. When recent_count is
// omitted but user_id identifies the payer, the server-side trailing-window
// counter fills it in.
type FraudCheckRequest struct {
	UserID        uuid.UUID `json:"user_id,omitempty"`
	Amount        float64   `json:"amount"`
	AverageAmount float64   `json:"average_amount"`
	RecentCount   int       `json:"recent_count"`
	CreatedAt     string    `json:"created_at"`
}

// FraudCheckResult is the outcome of scoring one candidate transaction
type FraudCheckResult struct {
	RiskScore int      `json:"risk_score"`
	FraudFlag bool     `json:"fraud_flag"`
	Reasons   []string `json:"reasons"`
}
