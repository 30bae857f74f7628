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

// GetWallet retrieves a user's wallet row
func (r *WalletRepo) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT user_id, balance, savings, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.Wallet
	err := r.db.GetContext(ctx, &wallet, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &wallet, nil
}

// UpsertWallet inserts the wallet row or overwrites it when one already
// exists for the user.
func (r *WalletRepo) UpsertWallet(ctx context.Context, wallet *models.Wallet) error {
	query := `
		INSERT INTO wallets (user_id, balance, savings, updated_at)
		VALUES (:user_id, :balance, :savings, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			savings = EXCLUDED.savings,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, wallet); err != nil {
		return fmt.Errorf("failed to upsert wallet: %w", err)
	}

	return nil
}
