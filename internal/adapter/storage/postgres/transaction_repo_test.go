package postgres

import (
	"context"
	"testing"
	"time"

	"dah-coin-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(userID string, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: "Earned for post_created",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumns() []string {
	return []string{"id", "user_id", "amount", "description", "created_at"}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	entry := newTestEntry("user-1", 5)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(entry.ID, entry.UserID, entry.Amount, entry.Description, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	entry := newTestEntry("user-1", -20)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(entry.ID).
		WillReturnRows(pgxmock.NewRows(transactionColumns()).AddRow(
			entry.ID, entry.UserID, entry.Amount, entry.Description, entry.CreatedAt,
		))

	result, err := repo.GetByID(context.Background(), entry.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, entry.Amount, result.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	newer := newTestEntry("user-1", 8)
	older := newTestEntry("user-1", -3)
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE user_id .+ ORDER BY created_at DESC LIMIT").
		WithArgs("user-1", 10).
		WillReturnRows(pgxmock.NewRows(transactionColumns()).
			AddRow(newer.ID, newer.UserID, newer.Amount, newer.Description, newer.CreatedAt).
			AddRow(older.ID, older.UserID, older.Amount, older.Description, older.CreatedAt))

	entries, err := repo.ListByUser(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID, "most recent first")
	assert.Equal(t, older.ID, entries[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByUser_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE user_id").
		WithArgs("ghost", 50).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	entries, err := repo.ListByUser(context.Background(), "ghost", 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumCreditsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	since := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
		WithArgs("user-1", since).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(42)))

	sum, err := repo.SumCreditsSince(context.Background(), "user-1", since)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumCreditsSinceTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
		WithArgs("user-1", since).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(650)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	sum, err := repo.SumCreditsSinceTx(context.Background(), tx, "user-1", since)
	require.NoError(t, err)
	assert.Equal(t, int64(650), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
