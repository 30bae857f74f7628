package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

func TestAdvise_GoVerdict(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.budgetRepo.EXPECT().
		ListBudgets(gomock.Any(), userID).
		Return([]models.Budget{
			{Category: "food", LimitAmount: 150},
			{Category: "fun", LimitAmount: 50},
		}, nil)

	m.transactionRepo.EXPECT().
		SumSpentSince(gomock.Any(), userID, "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, since time.Time) (float64, error) {
			// Advice always looks at the trailing 7 days
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Minute)
			return 100.0, nil
		})

	// Act
	advice, err := uc.Advise(context.Background(), &models.AdviceRequest{UserID: userID, Message: "movie night?"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AdviceGo, advice.Status)
	assert.Equal(t, "You're in good shape: you've used about 50% of your $200 budget over the last week.", advice.Message)
	assert.NotEmpty(t, advice.Suggestion)
}

func TestAdvise_CarefulVerdict(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.budgetRepo.EXPECT().
		ListBudgets(gomock.Any(), userID).
		Return([]models.Budget{{Category: "food", LimitAmount: 200}}, nil)

	m.transactionRepo.EXPECT().
		SumSpentSince(gomock.Any(), userID, "", gomock.Any()).
		Return(150.0, nil)

	// Act
	advice, err := uc.Advise(context.Background(), &models.AdviceRequest{UserID: userID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AdviceCareful, advice.Status)
	assert.Equal(t, "You're getting close to your limit, with about 75% of your $200 budget already spent this week.", advice.Message)
}

func TestAdvise_NopeVerdict(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.budgetRepo.EXPECT().
		ListBudgets(gomock.Any(), userID).
		Return([]models.Budget{{Category: "food", LimitAmount: 1000}}, nil)

	m.transactionRepo.EXPECT().
		SumSpentSince(gomock.Any(), userID, "", gomock.Any()).
		Return(1100.0, nil)

	// Act
	advice, err := uc.Advise(context.Background(), &models.AdviceRequest{UserID: userID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AdviceNope, advice.Status)
	assert.Equal(t, "You've spent around 110% of your $1,000 budget in the last week, which is over your current limit.", advice.Message)
}

func TestAdvise_BoundaryRatios(t *testing.T) {
	tests := []struct {
		name           string
		spent          float64
		expectedStatus string
	}{
		{name: "exactly 60% tips into careful", spent: 60, expectedStatus: models.AdviceCareful},
		{name: "just under 60% stays go", spent: 59.99, expectedStatus: models.AdviceGo},
		{name: "exactly 100% tips into nope", spent: 100, expectedStatus: models.AdviceNope},
		{name: "just under 100% stays careful", spent: 99.99, expectedStatus: models.AdviceCareful},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m, ctrl := newTestUC(t)
			defer ctrl.Finish()

			userID := uuid.New()

			m.budgetRepo.EXPECT().
				ListBudgets(gomock.Any(), userID).
				Return([]models.Budget{{Category: "food", LimitAmount: 100}}, nil)
			m.transactionRepo.EXPECT().
				SumSpentSince(gomock.Any(), userID, "", gomock.Any()).
				Return(tt.spent, nil)

			advice, err := uc.Advise(context.Background(), &models.AdviceRequest{UserID: userID})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, advice.Status)
		})
	}
}

func TestAdvise_NoBudgets(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.budgetRepo.EXPECT().
		ListBudgets(gomock.Any(), userID).
		Return([]models.Budget{}, nil)

	// Act
	advice, err := uc.Advise(context.Background(), &models.AdviceRequest{UserID: userID, Message: "can I splurge?"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AdviceCareful, advice.Status)
	assert.Equal(t, "I couldn't find any budgets set up yet, so I can't judge your spending accurately.", advice.Message)
	assert.Contains(t, advice.Suggestion, "weekly budget")
}

func TestAdvise_CategoryScoped(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	category := "food"

	m.budgetRepo.EXPECT().
		ListBudgetsByCategory(gomock.Any(), userID, category).
		Return([]models.Budget{{Category: category, LimitAmount: 100}}, nil)

	m.transactionRepo.EXPECT().
		SumSpentSince(gomock.Any(), userID, category, gomock.Any()).
		Return(30.0, nil)

	// Act
	advice, err := uc.Advise(context.Background(), &models.AdviceRequest{
		UserID:   userID,
		Message:  "pizza again?",
		Category: &category,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.AdviceGo, advice.Status)
}

func TestFormatWholeDollars(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{amount: 0, expected: "0"},
		{amount: 999, expected: "999"},
		{amount: 1000, expected: "1,000"},
		{amount: 1234.5, expected: "1,235"},
		{amount: 1234567, expected: "1,234,567"},
		{amount: -1500, expected: "-1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWholeDollars(tt.amount))
		})
	}
}
