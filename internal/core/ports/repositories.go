package ports

import (
	"context"
	"time"

	"dah-coin-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside transaction blocks so that the
// read-modify-write on a user's balances is serialized per user via
// row-level locking.
type WalletRepository interface {
	// CreateIfAbsent inserts a zeroed wallet row unless one already exists.
	// Called before locking so first-time users get a row to lock.
	CreateIfAbsent(ctx context.Context, tx pgx.Tx, userID string, now time.Time) error
	// GetByUserID returns the wallet without locking, or nil if unknown.
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	// GetByUserIDForUpdate returns the wallet with a pessimistic row lock.
	// MUST be called within a transaction.
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.Wallet, error)
	// UpdateBalances writes both balance buckets within a transaction.
	UpdateBalances(ctx context.Context, tx pgx.Tx, userID string, available, lockedForMinor int64) error
}

// TransactionRepository defines persistence for the append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// ListByUser returns the user's ledger, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	// SumCreditsSince sums positive entries created at or after since.
	// Cap usage is always derived from the ledger so the two can never diverge.
	SumCreditsSince(ctx context.Context, userID string, since time.Time) (int64, error)
	// SumCreditsSinceTx is the same consistent read taken inside the credit
	// transaction, after the wallet row lock is held.
	SumCreditsSinceTx(ctx context.Context, tx pgx.Tx, userID string, since time.Time) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
