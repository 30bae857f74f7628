package constants

// NATS subjects
const (
	SubjectTransactionCreated = "transaction.created"
	SubjectLedgerWarning      = "ledger.warning"
)
