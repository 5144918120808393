package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dah-coin-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The transactions
// table is the append-only ledger: credits are positive rows, spends are
// negative rows, and rows are never updated or deleted.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, user_id, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, t.ID, t.UserID, t.Amount, t.Description, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a ledger entry by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT id, user_id, amount, description, created_at
		FROM transactions WHERE id = $1`

	t := &domain.Transaction{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Description, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// ListByUser returns up to limit ledger entries for a user, most recent first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, amount, description, created_at
		FROM transactions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return entries, nil
}

// SumCreditsSince sums positive ledger amounts for a user from the given
// instant onward. Spends do not refund cap headroom, hence amount > 0.
func (r *TransactionRepo) SumCreditsSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var sum int64
	err := r.pool.QueryRow(ctx, sumCreditsQuery, userID, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum credits: %w", err)
	}
	return sum, nil
}

// SumCreditsSinceTx is SumCreditsSince executed inside an open transaction,
// for cap checks that must see the ledger under the wallet row lock.
func (r *TransactionRepo) SumCreditsSinceTx(ctx context.Context, tx pgx.Tx, userID string, since time.Time) (int64, error) {
	var sum int64
	err := tx.QueryRow(ctx, sumCreditsQuery, userID, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum credits in tx: %w", err)
	}
	return sum, nil
}

const sumCreditsQuery = `SELECT COALESCE(SUM(amount), 0)
	FROM transactions WHERE user_id = $1 AND amount > 0 AND created_at >= $2`
