package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// CreateBudget creates a budget after enforcing the per-user
// (category, period) uniqueness rule.
func (uc *FinanceUC) CreateBudget(ctx context.Context, req *models.CreateBudgetRequest) (*models.Budget, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user ID is required", finance.ErrValidation)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", finance.ErrValidation)
	}
	if req.LimitAmount <= 0 {
		return nil, fmt.Errorf("%w: limit amount must be positive", finance.ErrValidation)
	}
	if req.Period != models.PeriodWeekly && req.Period != models.PeriodMonthly {
		return nil, fmt.Errorf("%w: period must be %q or %q", finance.ErrValidation, models.PeriodWeekly, models.PeriodMonthly)
	}

	exists, err := uc.budgetRepo.BudgetExists(ctx, req.UserID, req.Category, req.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing budgets: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w for %s (%s)", finance.ErrBudgetExists, req.Category, req.Period)
	}

	budget := &models.Budget{
		UserID:      req.UserID,
		Category:    req.Category,
		Period:      req.Period,
		LimitAmount: req.LimitAmount,
	}
	if err := uc.budgetRepo.CreateBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return budget, nil
}

// ListBudgets returns all budgets for a user
func (uc *FinanceUC) ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	return uc.budgetRepo.ListBudgets(ctx, userID)
}

// UpdateBudgetLimit changes a budget's limit amount
func (uc *FinanceUC) UpdateBudgetLimit(ctx context.Context, budgetID uuid.UUID, limitAmount float64) (*models.Budget, error) {
	if limitAmount <= 0 {
		return nil, fmt.Errorf("%w: limit amount must be positive", finance.ErrValidation)
	}
	return uc.budgetRepo.UpdateBudgetLimit(ctx, budgetID, limitAmount)
}

// DeleteBudget removes a budget
func (uc *FinanceUC) DeleteBudget(ctx context.Context, budgetID uuid.UUID) error {
	return uc.budgetRepo.DeleteBudget(ctx, budgetID)
}
