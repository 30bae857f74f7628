package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/constants"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

// CreateTransaction inserts a new transaction record. Transactions are
// immutable once stored.
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, student_id, amount, category, merchant,
			source, risk_score, fraud_flag, fraud_reason, created_at
		) VALUES (:id, :student_id, :amount, :category, :merchant,
			:source, :risk_score, :fraud_flag, :fraud_reason, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves a user's transactions, newest first
func (r *TransactionRepo) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	query := `
		SELECT id, student_id, amount, category, merchant, source,
			risk_score, fraud_flag, fraud_reason, created_at
		FROM transactions
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// ListTransactionsByCategory retrieves a user's transactions in one category,
// newest first.
func (r *TransactionRepo) ListTransactionsByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.Transaction, error) {
	query := `
		SELECT id, student_id, amount, category, merchant, source,
			risk_score, fraud_flag, fraud_reason, created_at
		FROM transactions
		WHERE student_id = $1 AND category = $2
		ORDER BY created_at DESC
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, userID, category); err != nil {
		return nil, fmt.Errorf("failed to list transactions by category: %w", err)
	}

	return transactions, nil
}

// SumSpentSince totals transaction amounts for the user with created_at at or
// after the given instant. An empty category covers all categories.
func (r *TransactionRepo) SumSpentSince(ctx context.Context, userID uuid.UUID, category string, since time.Time) (float64, error) {
	var total float64
	var err error

	if category != "" {
		query := `
			SELECT COALESCE(SUM(amount), 0)
			FROM transactions
			WHERE student_id = $1 AND category = $2 AND created_at >= $3
		`
		err = r.db.GetContext(ctx, &total, query, userID, category, since)
	} else {
		query := `
			SELECT COALESCE(SUM(amount), 0)
			FROM transactions
			WHERE student_id = $1 AND created_at >= $2
		`
		err = r.db.GetContext(ctx, &total, query, userID, since)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return total, nil
}

// IncrementRecentCount bumps the user's trailing-window transaction counter
func (r *TransactionRepo) IncrementRecentCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := fmt.Sprintf(constants.KeyRecentTransactions, userID.String())
	count, err := r.redisClient.IncrWithTTL(ctx, key, constants.RecentTransactionWindow)
	if err != nil {
		return 0, fmt.Errorf("failed to increment recent transaction count: %w", err)
	}
	return count, nil
}

// GetRecentCount reads the user's trailing-window transaction counter
func (r *TransactionRepo) GetRecentCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := fmt.Sprintf(constants.KeyRecentTransactions, userID.String())
	count, err := r.redisClient.GetInt(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to get recent transaction count: %w", err)
	}
	return count, nil
}
