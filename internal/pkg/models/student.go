package models

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a student account in the system
type Student struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	AvatarColor string    `json:"avatar_color" db:"avatar_color"`
	Major       string    `json:"major" db:"major"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// StudentProfile is the composed read model for the profile endpoint:
// the student plus everything the home screen needs in one response.
type StudentProfile struct {
	Student             *Student             `json:"student"`
	Budgets             []Budget             `json:"budgets"`
	RecentTransactions  []Transaction        `json:"recent_transactions"`
	LeaderboardPosition *LeaderboardSnapshot `json:"leaderboard_position"`
	Wallet              *Wallet              `json:"wallet"`
}
