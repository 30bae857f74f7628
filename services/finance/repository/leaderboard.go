package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// GetLatestSnapshot retrieves the user's most recent leaderboard snapshot
func (r *LeaderboardRepo) GetLatestSnapshot(ctx context.Context, userID uuid.UUID) (*models.LeaderboardSnapshot, error) {
	query := `
		SELECT id, user_id, total_savings, rank, snapshot_date
		FROM leaderboard_snapshots
		WHERE user_id = $1
		ORDER BY snapshot_date DESC, id DESC
		LIMIT 1
	`

	var snapshot models.LeaderboardSnapshot
	err := r.db.GetContext(ctx, &snapshot, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard snapshot: %w", err)
	}

	return &snapshot, nil
}

// InsertSnapshot appends a new leaderboard snapshot. Snapshots are never
// updated in place.
func (r *LeaderboardRepo) InsertSnapshot(ctx context.Context, snapshot *models.LeaderboardSnapshot) error {
	query := `
		INSERT INTO leaderboard_snapshots (user_id, total_savings, rank, snapshot_date)
		VALUES (:user_id, :total_savings, :rank, :snapshot_date)
	`
	if _, err := r.db.NamedExecContext(ctx, query, snapshot); err != nil {
		return fmt.Errorf("failed to insert leaderboard snapshot: %w", err)
	}

	return nil
}
