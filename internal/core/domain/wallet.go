package domain

import "time"

// Wallet holds a user's DAH Coin balances. Available is spendable;
// LockedForMinor was earned while the user was under 18 and stays fenced
// until then. Invariant: Available + LockedForMinor equals the signed sum
// of the user's ledger.
type Wallet struct {
	UserID         string    `json:"user_id"`
	Available      int64     `json:"available"`
	LockedForMinor int64     `json:"locked_for_minor"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Total returns the sum of both balance buckets.
func (w *Wallet) Total() int64 {
	return w.Available + w.LockedForMinor
}

// CanSpend reports whether the available balance covers amount.
// Locked coins never count toward spendable funds.
func (w *Wallet) CanSpend(amount int64) bool {
	return amount <= w.Available
}

// NewWallet returns a zeroed wallet for a user. Wallets are created lazily
// on first credit or spend; unknown users read back as a zero wallet.
func NewWallet(userID string, now time.Time) *Wallet {
	return &Wallet{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
