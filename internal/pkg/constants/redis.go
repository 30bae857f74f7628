package constants

import "time"

// Redis key formats
const (
	KeyRecentTransactions = "txn:recent:%s" // Format: txn:recent:{user_id}
)

// RecentTransactionWindow is the trailing window the risk scorer's
// transaction counter covers.
const RecentTransactionWindow = 10 * time.Minute
