package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/bshiribaiev/hackfest/internal/pkg/database"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
)

// StudentRepo handles student persistence
type StudentRepo struct {
	db *sqlx.DB
}

// NewStudentRepo creates a new student repository
func NewStudentRepo(db *sqlx.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// TransactionRepo handles transaction persistence and the redis-backed
// trailing-window transaction counter.
type TransactionRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TransactionRepo {
	return &TransactionRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// WalletRepo handles wallet persistence
type WalletRepo struct {
	db *sqlx.DB
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(db *sqlx.DB) *WalletRepo {
	return &WalletRepo{db: db}
}

// LeaderboardRepo handles leaderboard snapshot persistence
type LeaderboardRepo struct {
	db *sqlx.DB
}

// NewLeaderboardRepo creates a new leaderboard repository
func NewLeaderboardRepo(db *sqlx.DB) *LeaderboardRepo {
	return &LeaderboardRepo{db: db}
}

// BudgetRepo handles budget persistence
type BudgetRepo struct {
	db *sqlx.DB
}

// NewBudgetRepo creates a new budget repository
func NewBudgetRepo(db *sqlx.DB) *BudgetRepo {
	return &BudgetRepo{db: db}
}
