package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dah-coin-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// CreateIfAbsent inserts a zero-balance wallet row for the user if one does
// not exist yet. Wallets are created lazily on first credit or spend, so
// callers run this before taking the row lock.
func (r *WalletRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, userID string, now time.Time) error {
	query := `INSERT INTO wallets (user_id, available, locked_for_minor, created_at, updated_at)
		VALUES ($1, 0, 0, $2, $2)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := tx.Exec(ctx, query, userID, now)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches a wallet by user ID (without locking).
func (r *WalletRepo) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT user_id, available, locked_for_minor, created_at, updated_at
		FROM wallets WHERE user_id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&w.UserID, &w.Available, &w.LockedForMinor, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by user id: %w", err)
	}
	return w, nil
}

// GetByUserIDForUpdate fetches a wallet by user ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.Wallet, error) {
	query := `SELECT user_id, available, locked_for_minor, created_at, updated_at
		FROM wallets WHERE user_id = $1 FOR UPDATE`

	w := &domain.Wallet{}
	err := tx.QueryRow(ctx, query, userID).Scan(
		&w.UserID, &w.Available, &w.LockedForMinor, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalances writes both balance columns within a transaction.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, userID string, available, lockedForMinor int64) error {
	query := `UPDATE wallets SET available = $1, locked_for_minor = $2, updated_at = NOW() WHERE user_id = $3`

	tag, err := tx.Exec(ctx, query, available, lockedForMinor, userID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", userID)
	}
	return nil
}
