package models

import "github.com/google/uuid"

// Advice statuses returned by the advisory engine
const (
	AdviceGo      = "GO"
	AdviceCareful = "CAREFUL"
	AdviceNope    = "NOPE"
)

// AdviceRequest asks how the user's recent spending compares to their budgets.
// Category narrows the question to a single budget category when set.
type AdviceRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	Message  string    `json:"message"`
	Category *string   `json:"category,omitempty"`
}

// AdviceResponse is the qualitative verdict on recent spending
type AdviceResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}
