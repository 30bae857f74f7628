package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// CreateBudget inserts a new budget row
func (r *BudgetRepo) CreateBudget(ctx context.Context, budget *models.Budget) error {
	budget.ID = uuid.New()
	budget.CreatedAt = time.Now()

	query := `
		INSERT INTO budgets (id, user_id, category, period, limit_amount, created_at)
		VALUES (:id, :user_id, :category, :period, :limit_amount, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, budget); err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	return nil
}

// BudgetExists reports whether the user already has a budget for the
// (category, period) pair.
func (r *BudgetRepo) BudgetExists(ctx context.Context, userID uuid.UUID, category, period string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM budgets
			WHERE user_id = $1 AND category = $2 AND period = $3
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, category, period); err != nil {
		return false, fmt.Errorf("failed to check budget existence: %w", err)
	}

	return exists, nil
}

// ListBudgets retrieves all budgets for a user in insertion order
func (r *BudgetRepo) ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, period, limit_amount, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at
	`

	budgets := []models.Budget{}
	if err := r.db.SelectContext(ctx, &budgets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

// ListBudgetsByCategory retrieves a user's budgets for one category
func (r *BudgetRepo) ListBudgetsByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, period, limit_amount, created_at
		FROM budgets
		WHERE user_id = $1 AND category = $2
		ORDER BY created_at
	`

	budgets := []models.Budget{}
	if err := r.db.SelectContext(ctx, &budgets, query, userID, category); err != nil {
		return nil, fmt.Errorf("failed to list budgets by category: %w", err)
	}

	return budgets, nil
}

// UpdateBudgetLimit changes a budget's limit amount and returns the updated row
func (r *BudgetRepo) UpdateBudgetLimit(ctx context.Context, budgetID uuid.UUID, limitAmount float64) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET limit_amount = $2
		WHERE id = $1
		RETURNING id, user_id, category, period, limit_amount, created_at
	`

	var budget models.Budget
	err := r.db.GetContext(ctx, &budget, query, budgetID, limitAmount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to update budget limit: %w", err)
	}

	return &budget, nil
}

// DeleteBudget removes a budget row
func (r *BudgetRepo) DeleteBudget(ctx context.Context, budgetID uuid.UUID) error {
	query := `DELETE FROM budgets WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return finance.ErrBudgetNotFound
	}

	return nil
}
