package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the derived per-user aggregate of spendable balance and
// accumulated savings. One row per user, written only by the ledger updater.
type Wallet struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Balance   float64   `json:"balance" db:"balance"`
	Savings   float64   `json:"savings" db:"savings"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewWallet returns the default-constructed wallet for a user that has no
// wallet row yet: zero balance, zero savings.
func NewWallet(userID uuid.UUID) *Wallet {
	return &Wallet{
		UserID:  userID,
		Balance: 0,
		Savings: 0,
	}
}
