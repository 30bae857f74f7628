package finance

import "errors"

// Sentinel errors surfaced by the finance service. Handlers map these to
// HTTP status codes; everything else is an internal failure.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrBudgetNotFound   = errors.New("budget not found")
	ErrSnapshotNotFound = errors.New("leaderboard snapshot not found")

	// ErrBudgetExists signals a (user, category, period) uniqueness conflict
	ErrBudgetExists = errors.New("budget already exists")

	// ErrValidation wraps malformed-input failures so handlers can map them
	// to client errors.
	ErrValidation = errors.New("validation failed")
)
