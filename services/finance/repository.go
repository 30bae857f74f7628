package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/bshiribaiev/hackfest/services/finance StudentRepo,TransactionRepo,WalletRepo,LeaderboardRepo,BudgetRepo

// StudentRepo defines storage operations for student accounts
type StudentRepo interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
}

// TransactionRepo defines storage operations for transactions, plus the
// trailing-window transaction counter the risk scorer context uses.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.Transaction, error)
	// SumSpentSince totals transaction amounts for the user since the given
	// instant; an empty category means all categories.
	SumSpentSince(ctx context.Context, userID uuid.UUID, category string, since time.Time) (float64, error)
	IncrementRecentCount(ctx context.Context, userID uuid.UUID) (int64, error)
	GetRecentCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// WalletRepo defines storage operations for the derived wallet aggregate
type WalletRepo interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	UpsertWallet(ctx context.Context, wallet *models.Wallet) error
}

// LeaderboardRepo defines storage operations for leaderboard snapshots
type LeaderboardRepo interface {
	GetLatestSnapshot(ctx context.Context, userID uuid.UUID) (*models.LeaderboardSnapshot, error)
	InsertSnapshot(ctx context.Context, snapshot *models.LeaderboardSnapshot) error
}

// BudgetRepo defines storage operations for budgets
type BudgetRepo interface {
	CreateBudget(ctx context.Context, budget *models.Budget) error
	BudgetExists(ctx context.Context, userID uuid.UUID, category, period string) (bool, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	ListBudgetsByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.Budget, error)
	UpdateBudgetLimit(ctx context.Context, budgetID uuid.UUID, limitAmount float64) (*models.Budget, error)
	DeleteBudget(ctx context.Context, budgetID uuid.UUID) error
}
