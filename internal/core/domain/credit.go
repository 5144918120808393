package domain

// CreditResult is the outcome of a credit attempt. A capped credit is a
// normal outcome, not an error: CreditedAmount may be zero with Capped set
// and the wallet unchanged.
type CreditResult struct {
	Wallet         *Wallet   `json:"wallet"`
	CreditedAmount int64     `json:"credited_amount"`
	Capped         bool      `json:"capped"`
	CapReason      CapReason `json:"cap_reason,omitempty"`
}

// SpendResult is the outcome of a successful spend.
type SpendResult struct {
	Wallet      *Wallet      `json:"wallet"`
	Transaction *Transaction `json:"transaction"`
}
