package ports

import (
	"context"

	"dah-coin-engine/internal/core/domain"
)

// EconomyService is the single entry point feature code uses to move coins.
type EconomyService interface {
	// CreditCoins awards coins for a platform action. The credited amount is
	// the rate-table (or override) amount truncated by the daily and monthly
	// caps, then split by age policy. A capped-to-zero credit succeeds.
	CreditCoins(ctx context.Context, req CreditRequest) (*domain.CreditResult, error)
	// SpendCoins draws from the available balance only. Fails with
	// InsufficientFunds when amount exceeds it.
	SpendCoins(ctx context.Context, req SpendRequest) (*domain.SpendResult, error)
	// GetWallet returns the current snapshot; unknown users get a zero wallet.
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	// GetTransactionHistory returns up to limit entries, most recent first.
	GetTransactionHistory(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	// GetDailyUsed returns coins earned since the start of the current UTC day.
	GetDailyUsed(ctx context.Context, userID string) (int64, error)
	// GetMonthlyUsed returns coins earned since the start of the current UTC month.
	GetMonthlyUsed(ctx context.Context, userID string) (int64, error)
}

// CreditRequest holds validated input for a credit attempt. Age is the
// user's current age supplied by the caller; the engine treats it as ground
// truth. AmountOverride, when set, bypasses the rate table (quest and game
// awards) but still passes through cap enforcement.
type CreditRequest struct {
	UserID         string
	Age            int
	Action         domain.ActionKind
	AmountOverride *int64
	Description    string
}

// SpendRequest holds validated input for a spend.
type SpendRequest struct {
	UserID string
	Amount int64
	Reason string
}
