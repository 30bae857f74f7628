package finance

import (
	"context"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/bshiribaiev/hackfest/services/finance FinanceGW

// FinanceGW defines the event publication operations of the finance service.
// All publications are best-effort: callers log failures and move on.
type FinanceGW interface {
	PublishTransactionCreated(ctx context.Context, event *models.TransactionEvent) error
	PublishLedgerWarning(ctx context.Context, event *models.LedgerWarningEvent) error
}
