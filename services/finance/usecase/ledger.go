package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// Share of a top-up that is auto-saved: 10% goes straight to savings, the
// remaining 90% to the spendable balance.
const topUpSavingsShare = 0.10

// ledgerDelta returns the wallet balance and savings deltas for one
// transaction. It is a deterministic function of category and amount.
func ledgerDelta(category string, amount float64) (balanceDelta, savingsDelta float64) {
	switch category {
	case models.CategoryTopUp:
		return amount * (1 - topUpSavingsShare), amount * topUpSavingsShare
	case models.CategorySaveToSavings:
		// Moves funds from wallet to savings: net wallet total unchanged
		return -amount, amount
	default:
		return -amount, 0
	}
}

// applyLedgerUpdate derives the wallet mutation and leaderboard snapshot for
// a committed transaction. It mutates exactly one wallet row and appends
// exactly one snapshot. The wallet defaults to zero balance and savings when
// no row exists yet; the snapshot carries forward the most recent rank, or
// the default rank for a user with no snapshot history.
func (uc *FinanceUC) applyLedgerUpdate(ctx context.Context, tx *models.Transaction) error {
	balanceDelta, savingsDelta := ledgerDelta(tx.Category, tx.Amount)

	wallet, err := uc.walletRepo.GetWallet(ctx, tx.StudentID)
	if err != nil {
		if !errors.Is(err, finance.ErrWalletNotFound) {
			return fmt.Errorf("failed to read wallet: %w", err)
		}
		wallet = models.NewWallet(tx.StudentID)
	}

	wallet.Balance += balanceDelta
	wallet.Savings += savingsDelta
	wallet.UpdatedAt = time.Now()

	if err := uc.walletRepo.UpsertWallet(ctx, wallet); err != nil {
		return fmt.Errorf("failed to upsert wallet: %w", err)
	}

	rank := models.DefaultLeaderboardRank
	last, err := uc.leaderboardRepo.GetLatestSnapshot(ctx, tx.StudentID)
	if err != nil {
		if !errors.Is(err, finance.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to read leaderboard snapshot: %w", err)
		}
	} else {
		rank = last.Rank
	}

	snapshot := &models.LeaderboardSnapshot{
		UserID:       tx.StudentID,
		TotalSavings: wallet.Savings,
		Rank:         rank,
		SnapshotDate: truncateToDate(time.Now()),
	}
	if err := uc.leaderboardRepo.InsertSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert leaderboard snapshot: %w", err)
	}

	return nil
}

// truncateToDate drops the time-of-day component: snapshots are dated at
// calendar-day granularity.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
