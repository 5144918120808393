package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable ledger entry for a coin movement.
// Amount is signed: positive entries are credits, negative entries are
// debits against the available balance.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsCredit reports whether this entry added coins to the wallet.
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}
