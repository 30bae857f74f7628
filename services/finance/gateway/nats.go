package gateway

import (
	"context"
	"fmt"

	"github.com/bshiribaiev/hackfest/internal/pkg/constants"
	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

// publisher is the slice of the NATS producer the gateway needs
type publisher interface {
	Publish(subject string, message interface{}) error
}

// FinanceGW publishes finance service events to NATS
type FinanceGW struct {
	producer publisher
}

// NewFinanceGW creates a new finance gateway
func NewFinanceGW(producer publisher) *FinanceGW {
	return &FinanceGW{producer: producer}
}

// PublishTransactionCreated announces a committed transaction
func (g *FinanceGW) PublishTransactionCreated(ctx context.Context, event *models.TransactionEvent) error {
	if err := g.producer.Publish(constants.SubjectTransactionCreated, event); err != nil {
		return fmt.Errorf("failed to publish transaction event: %w", err)
	}

	logger.Debug("Published transaction event",
		logger.String("transaction_id", event.TransactionID.String()),
		logger.String("user_id", event.UserID.String()),
	)

	return nil
}

// PublishLedgerWarning reports a failed best-effort ledger update so the
// drift is visible downstream even though the request still succeeded.
func (g *FinanceGW) PublishLedgerWarning(ctx context.Context, event *models.LedgerWarningEvent) error {
	if err := g.producer.Publish(constants.SubjectLedgerWarning, event); err != nil {
		return fmt.Errorf("failed to publish ledger warning: %w", err)
	}

	logger.Debug("Published ledger warning",
		logger.String("transaction_id", event.TransactionID.String()),
		logger.String("user_id", event.UserID.String()),
	)

	return nil
}
