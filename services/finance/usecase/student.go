package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// profileTransactionLimit is how many recent transactions the profile carries
const profileTransactionLimit = 20

// RegisterStudent creates a new student account
func (uc *FinanceUC) RegisterStudent(ctx context.Context, student *models.Student) error {
	if student.Name == "" {
		return fmt.Errorf("%w: name is required", finance.ErrValidation)
	}
	if student.Email == "" {
		return fmt.Errorf("%w: email is required", finance.ErrValidation)
	}

	return uc.studentRepo.CreateStudent(ctx, student)
}

// GetStudent retrieves a student by ID
func (uc *FinanceUC) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return uc.studentRepo.GetStudent(ctx, id)
}

// ListStudents retrieves all students
func (uc *FinanceUC) ListStudents(ctx context.Context) ([]models.Student, error) {
	return uc.studentRepo.ListStudents(ctx)
}

// GetStudentProfile composes the full profile: the student plus budgets,
// recent transactions, leaderboard position and wallet.
//
// Read-time reconciliation: when a wallet row exists, the returned
// leaderboard position mirrors the wallet's savings, overriding whatever the
// stored snapshot says. The fix is applied to the response only, never
// persisted; a user with a wallet but no snapshot history gets a synthetic
// position at the default rank.
func (uc *FinanceUC) GetStudentProfile(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error) {
	student, err := uc.studentRepo.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.ListBudgets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	transactions, err := uc.transactionRepo.ListTransactions(ctx, id, profileTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	position, err := uc.leaderboardRepo.GetLatestSnapshot(ctx, id)
	if err != nil {
		if !errors.Is(err, finance.ErrSnapshotNotFound) {
			return nil, fmt.Errorf("failed to load leaderboard position: %w", err)
		}
		position = nil
	}

	wallet, err := uc.walletRepo.GetWallet(ctx, id)
	if err != nil {
		if !errors.Is(err, finance.ErrWalletNotFound) {
			return nil, fmt.Errorf("failed to load wallet: %w", err)
		}
		wallet = nil
	}

	if wallet != nil {
		if position != nil {
			position.TotalSavings = wallet.Savings
		} else {
			position = &models.LeaderboardSnapshot{
				UserID:       id,
				TotalSavings: wallet.Savings,
				Rank:         models.DefaultLeaderboardRank,
				SnapshotDate: truncateToDate(time.Now()),
			}
		}
	}

	return &models.StudentProfile{
		Student:             student,
		Budgets:             budgets,
		RecentTransactions:  transactions,
		LeaderboardPosition: position,
		Wallet:              wallet,
	}, nil
}
