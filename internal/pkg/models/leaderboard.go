package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLeaderboardRank is carried onto a user's first snapshot when no
// prior snapshot exists.
const DefaultLeaderboardRank = 4

// LeaderboardSnapshot is a point-in-time record of a user's savings and
// leaderboard rank. Snapshots are appended, never updated. The serial ID
// breaks ties between snapshots taken on the same day.
type LeaderboardSnapshot struct {
	ID           int64     `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	TotalSavings float64   `json:"total_savings" db:"total_savings"`
	Rank         int       `json:"rank" db:"rank"`
	SnapshotDate time.Time `json:"snapshot_date" db:"snapshot_date"`
}
