package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

// Classification thresholds on percentage of the limit used
const (
	nearThresholdPct = 80
	overThresholdPct = 100
)

// SpendingTracker aggregates in-window spend against every budget the user
// has, in insertion order. Users without budgets get an empty result with an
// explanatory message.
func (uc *FinanceUC) SpendingTracker(ctx context.Context, userID uuid.UUID) (*models.SpendingTracker, error) {
	budgets, err := uc.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	if len(budgets) == 0 {
		return &models.SpendingTracker{
			UserID:  userID,
			Budgets: []models.BudgetStatus{},
			Message: "No budgets found",
		}, nil
	}

	now := time.Now()
	statuses := make([]models.BudgetStatus, 0, len(budgets))

	for _, budget := range budgets {
		windowStart := periodWindowStart(budget.Period, now)

		spent, err := uc.transactionRepo.SumSpentSince(ctx, userID, budget.Category, windowStart)
		if err != nil {
			return nil, fmt.Errorf("failed to sum spending for %s: %w", budget.Category, err)
		}

		statuses = append(statuses, buildBudgetStatus(budget, spent))
	}

	return &models.SpendingTracker{
		UserID:  userID,
		Budgets: statuses,
	}, nil
}

// periodWindowStart returns the inclusive start of the budget's current
// window at calendar-day granularity: the most recent Monday for weekly
// budgets, the first of the current month for everything else.
func periodWindowStart(period string, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if period == models.PeriodWeekly {
		// Go weeks start on Sunday; shift so Monday is offset 0
		offset := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	}

	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func buildBudgetStatus(budget models.Budget, spent float64) models.BudgetStatus {
	remaining := budget.LimitAmount - spent

	percentageUsed := 0.0
	if budget.LimitAmount > 0 {
		percentageUsed = spent / budget.LimitAmount * 100
	}

	status := models.BudgetStatusUnder
	switch {
	case percentageUsed >= overThresholdPct:
		status = models.BudgetStatusOver
	case percentageUsed >= nearThresholdPct:
		status = models.BudgetStatusNear
	}

	return models.BudgetStatus{
		BudgetID:       budget.ID,
		Category:       budget.Category,
		Period:         budget.Period,
		BudgetLimit:    budget.LimitAmount,
		Spent:          round2(spent),
		Remaining:      round2(remaining),
		PercentageUsed: round2(percentageUsed),
		Status:         status,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
