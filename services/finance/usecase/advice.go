package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

// Advice looks at a fixed trailing window regardless of budget periods
const adviceWindowDays = 7

// Ratio thresholds for the advice verdict
const (
	adviceGoThreshold   = 0.6
	adviceNopeThreshold = 1.0
)

// Advise compares the user's spend over the last 7 days against their total
// configured budget and returns a qualitative verdict. When the request names
// a category, both sides of the comparison are scoped to it. Read-only: this
// never touches ledger state.
func (uc *FinanceUC) Advise(ctx context.Context, req *models.AdviceRequest) (*models.AdviceResponse, error) {
	totalBudget, totalSpent, err := uc.summariseSpending(ctx, req.UserID, req.Category)
	if err != nil {
		return nil, err
	}

	if totalBudget <= 0 {
		return &models.AdviceResponse{
			Status:     models.AdviceCareful,
			Message:    "I couldn't find any budgets set up yet, so I can't judge your spending accurately.",
			Suggestion: "Try creating a simple weekly budget for categories like food, transport, and fun money so I can give more precise advice.",
		}, nil
	}

	ratio := totalSpent / totalBudget
	pct := fmt.Sprintf("%.0f%%", ratio*100)
	budgetStr := formatWholeDollars(totalBudget)

	switch {
	case ratio < adviceGoThreshold:
		return &models.AdviceResponse{
			Status:     models.AdviceGo,
			Message:    fmt.Sprintf("You're in good shape: you've used about %s of your $%s budget over the last week.", pct, budgetStr),
			Suggestion: "If you keep this pace you should comfortably stay within your budget.",
		}, nil
	case ratio < adviceNopeThreshold:
		return &models.AdviceResponse{
			Status:     models.AdviceCareful,
			Message:    fmt.Sprintf("You're getting close to your limit, with about %s of your $%s budget already spent this week.", pct, budgetStr),
			Suggestion: "Consider pausing non-essential purchases for a few days so you stay on track.",
		}, nil
	default:
		return &models.AdviceResponse{
			Status:     models.AdviceNope,
			Message:    fmt.Sprintf("You've spent around %s of your $%s budget in the last week, which is over your current limit.", pct, budgetStr),
			Suggestion: "It might be a good idea to cut back on non-essential spending for the rest of the week.",
		}, nil
	}
}

// summariseSpending returns (total budget, total spent in the last 7 days)
// for a user, optionally scoped to a single category.
func (uc *FinanceUC) summariseSpending(ctx context.Context, userID uuid.UUID, category *string) (float64, float64, error) {
	var budgets []models.Budget
	var err error

	if category != nil && *category != "" {
		budgets, err = uc.budgetRepo.ListBudgetsByCategory(ctx, userID, *category)
	} else {
		budgets, err = uc.budgetRepo.ListBudgets(ctx, userID)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load budgets: %w", err)
	}

	if len(budgets) == 0 {
		return 0, 0, nil
	}

	totalBudget := 0.0
	for _, b := range budgets {
		totalBudget += b.LimitAmount
	}

	since := time.Now().AddDate(0, 0, -adviceWindowDays)

	filter := ""
	if category != nil {
		filter = *category
	}

	totalSpent, err := uc.transactionRepo.SumSpentSince(ctx, userID, filter, since)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum recent spending: %w", err)
	}

	return totalBudget, totalSpent, nil
}

// formatWholeDollars renders an amount as a whole number with thousands
// separators, e.g. 1234.5 -> "1,235".
func formatWholeDollars(amount float64) string {
	n := int64(math.Round(amount))

	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
