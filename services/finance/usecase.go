package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/bshiribaiev/hackfest/services/finance StudentUC,TransactionUC,BudgetUC,AdviceUC

// StudentUC defines the student-facing use cases
type StudentUC interface {
	RegisterStudent(ctx context.Context, student *models.Student) error
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudentProfile(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error)
}

// TransactionUC defines the transaction and risk-scoring use cases
type TransactionUC interface {
	SubmitTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.Transaction, error)
	ScoreTransaction(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudCheckResult, error)
}

// BudgetUC defines the budget management and rollup use cases
type BudgetUC interface {
	CreateBudget(ctx context.Context, req *models.CreateBudgetRequest) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	UpdateBudgetLimit(ctx context.Context, budgetID uuid.UUID, limitAmount float64) (*models.Budget, error)
	DeleteBudget(ctx context.Context, budgetID uuid.UUID) error
	SpendingTracker(ctx context.Context, userID uuid.UUID) (*models.SpendingTracker, error)
}

// AdviceUC defines the advisory use case
type AdviceUC interface {
	Advise(ctx context.Context, req *models.AdviceRequest) (*models.AdviceResponse, error)
}
