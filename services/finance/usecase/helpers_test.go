package usecase

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance/mocks"
)

// ucMocks bundles the mocked dependencies behind a FinanceUC under test
type ucMocks struct {
	studentRepo     *mocks.MockStudentRepo
	transactionRepo *mocks.MockTransactionRepo
	walletRepo      *mocks.MockWalletRepo
	leaderboardRepo *mocks.MockLeaderboardRepo
	budgetRepo      *mocks.MockBudgetRepo
	gw              *mocks.MockFinanceGW
}

func newTestUC(t *testing.T) (*FinanceUC, *ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &ucMocks{
		studentRepo:     mocks.NewMockStudentRepo(ctrl),
		transactionRepo: mocks.NewMockTransactionRepo(ctrl),
		walletRepo:      mocks.NewMockWalletRepo(ctrl),
		leaderboardRepo: mocks.NewMockLeaderboardRepo(ctrl),
		budgetRepo:      mocks.NewMockBudgetRepo(ctrl),
		gw:              mocks.NewMockFinanceGW(ctrl),
	}

	uc := NewFinanceUC(
		&models.Config{},
		m.studentRepo,
		m.transactionRepo,
		m.walletRepo,
		m.leaderboardRepo,
		m.budgetRepo,
		m.gw,
	)

	return uc, m, ctrl
}
