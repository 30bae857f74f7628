package usecase

import (
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// FinanceUC implements the finance service use cases: student accounts, the
// transaction ledger, budget rollups and the advisory engine.
type FinanceUC struct {
	cfg             *models.Config
	studentRepo     finance.StudentRepo
	transactionRepo finance.TransactionRepo
	walletRepo      finance.WalletRepo
	leaderboardRepo finance.LeaderboardRepo
	budgetRepo      finance.BudgetRepo
	gw              finance.FinanceGW
}

// NewFinanceUC creates a new finance use case
func NewFinanceUC(
	cfg *models.Config,
	studentRepo finance.StudentRepo,
	transactionRepo finance.TransactionRepo,
	walletRepo finance.WalletRepo,
	leaderboardRepo finance.LeaderboardRepo,
	budgetRepo finance.BudgetRepo,
	gw finance.FinanceGW,
) *FinanceUC {
	return &FinanceUC{
		cfg:             cfg,
		studentRepo:     studentRepo,
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		leaderboardRepo: leaderboardRepo,
		budgetRepo:      budgetRepo,
		gw:              gw,
	}
}
