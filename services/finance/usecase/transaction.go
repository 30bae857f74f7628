package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// DefaultTransactionLimit caps transaction listings when the caller does not
// ask for a specific limit.
const DefaultTransactionLimit = 50

// SubmitTransaction stores a new transaction and then derives the wallet and
// leaderboard mutations from it. Only the transaction insert decides the
// outcome: the ledger update, the recent-count bump and the event publication
// are best-effort and never fail the submission.
func (uc *FinanceUC) SubmitTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user ID is required", finance.ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", finance.ErrValidation)
	}

	tx := &models.Transaction{
		ID:          uuid.New(),
		StudentID:   req.UserID,
		Amount:      req.Amount,
		Category:    req.Category,
		Merchant:    req.Merchant,
		Source:      req.Source,
		RiskScore:   req.RiskScore,
		FraudFlag:   req.FraudFlag,
		FraudReason: req.FraudReason,
		CreatedAt:   time.Now(),
	}

	if err := uc.transactionRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := uc.applyLedgerUpdate(ctx, tx); err != nil {
		logger.Warn("Ledger update failed after transaction commit",
			logger.String("transaction_id", tx.ID.String()),
			logger.String("user_id", tx.StudentID.String()),
			logger.Err(err),
		)
		warning := &models.LedgerWarningEvent{
			TransactionID: tx.ID,
			UserID:        tx.StudentID,
			Reason:        err.Error(),
			Timestamp:     time.Now().UTC(),
		}
		if pubErr := uc.gw.PublishLedgerWarning(ctx, warning); pubErr != nil {
			logger.Warn("Failed to publish ledger warning", logger.Err(pubErr))
		}
	}

	if _, err := uc.transactionRepo.IncrementRecentCount(ctx, req.UserID); err != nil {
		logger.Warn("Failed to bump recent transaction counter",
			logger.String("user_id", req.UserID.String()),
			logger.Err(err),
		)
	}

	event := &models.TransactionEvent{
		TransactionID: tx.ID,
		UserID:        tx.StudentID,
		Amount:        tx.Amount,
		Category:      tx.Category,
		Timestamp:     time.Now().UTC(),
	}
	if err := uc.gw.PublishTransactionCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err),
		)
	}

	return tx, nil
}

// ListTransactions returns a user's transactions, newest first
func (uc *FinanceUC) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	return uc.transactionRepo.ListTransactions(ctx, userID, limit)
}

// ListTransactionsByCategory returns a user's transactions in one category,
// newest first.
func (uc *FinanceUC) ListTransactionsByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.Transaction, error) {
	return uc.transactionRepo.ListTransactionsByCategory(ctx, userID, category)
}
