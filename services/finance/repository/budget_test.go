package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

func setupBudgetRepoTest(t *testing.T) (*BudgetRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewBudgetRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateBudgetRow(t *testing.T) {
	repo, mock, cleanup := setupBudgetRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO budgets").
		WillReturnResult(sqlmock.NewResult(0, 1))

	budget := &models.Budget{
		UserID:      uuid.New(),
		Category:    "food",
		Period:      models.PeriodWeekly,
		LimitAmount: 100,
	}
	err := repo.CreateBudget(context.Background(), budget)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, budget.ID)
	assert.False(t, budget.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetExists(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, exists bool, err error)
	}{
		{
			name: "Exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(userID, "food", models.PeriodWeekly).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.NoError(t, err)
				assert.True(t, exists)
			},
		},
		{
			name: "Does Not Exist",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(userID, "food", models.PeriodWeekly).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.NoError(t, err)
				assert.False(t, exists)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(userID, "food", models.PeriodWeekly).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, exists bool, err error) {
				assert.Error(t, err)
				assert.False(t, exists)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBudgetRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			exists, err := repo.BudgetExists(context.Background(), userID, "food", models.PeriodWeekly)
			tc.assertFunc(t, exists, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListBudgets(t *testing.T) {
	repo, mock, cleanup := setupBudgetRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "category", "period", "limit_amount", "created_at"}).
		AddRow(uuid.New(), userID, "food", models.PeriodWeekly, 100.0, time.Now()).
		AddRow(uuid.New(), userID, "fun", models.PeriodMonthly, 60.0, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM budgets").
		WithArgs(userID).
		WillReturnRows(rows)

	budgets, err := repo.ListBudgets(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "food", budgets[0].Category)
	assert.Equal(t, models.PeriodMonthly, budgets[1].Period)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBudgetsByCategory(t *testing.T) {
	repo, mock, cleanup := setupBudgetRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "category", "period", "limit_amount", "created_at"}).
		AddRow(uuid.New(), userID, "food", models.PeriodWeekly, 100.0, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM budgets").
		WithArgs(userID, "food").
		WillReturnRows(rows)

	budgets, err := repo.ListBudgetsByCategory(context.Background(), userID, "food")

	assert.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "food", budgets[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBudgetLimit(t *testing.T) {
	budgetID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, budget *models.Budget, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "user_id", "category", "period", "limit_amount", "created_at"}).
					AddRow(budgetID, uuid.New(), "food", models.PeriodWeekly, 150.0, time.Now())
				mock.ExpectQuery("UPDATE budgets").
					WithArgs(budgetID, 150.0).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, budget *models.Budget, err error) {
				assert.NoError(t, err)
				require.NotNil(t, budget)
				assert.InDelta(t, 150.0, budget.LimitAmount, 1e-9)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE budgets").
					WithArgs(budgetID, 150.0).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, budget *models.Budget, err error) {
				assert.Nil(t, budget)
				assert.ErrorIs(t, err, finance.ErrBudgetNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBudgetRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			budget, err := repo.UpdateBudgetLimit(context.Background(), budgetID, 150)
			tc.assertFunc(t, budget, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteBudgetRow(t *testing.T) {
	budgetID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM budgets").
					WithArgs(budgetID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM budgets").
					WithArgs(budgetID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, finance.ErrBudgetNotFound)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM budgets").
					WithArgs(budgetID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to delete budget")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBudgetRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.DeleteBudget(context.Background(), budgetID)
			tc.assertFunc(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
