package dto

// CreditRequest is the request body for crediting coins.
type CreditRequest struct {
	UserID         string `json:"user_id" binding:"required,safe_id,max=64"`
	Age            int    `json:"age" binding:"required,gte=1,lte=150"`
	Action         string `json:"action,omitempty"`
	AmountOverride *int64 `json:"amount_override,omitempty"`
	Description    string `json:"description,omitempty" binding:"max=200"`
}

// SpendRequest is the request body for spending coins.
type SpendRequest struct {
	UserID string `json:"user_id" binding:"required,safe_id,max=64"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Reason string `json:"reason" binding:"required,max=200"`
}

// WalletResponse is the wallet snapshot returned by read and write endpoints.
type WalletResponse struct {
	UserID         string `json:"user_id"`
	Available      int64  `json:"available"`
	LockedForMinor int64  `json:"locked_for_minor"`
	Total          int64  `json:"total"`
	UpdatedAt      string `json:"updated_at"`
}

// CreditResponse is the response body for a credit result.
type CreditResponse struct {
	Wallet         WalletResponse `json:"wallet"`
	CreditedAmount int64          `json:"credited_amount"`
	Capped         bool           `json:"capped"`
	CapReason      string         `json:"cap_reason,omitempty"`
}

// SpendResponse is the response body for a spend result.
type SpendResponse struct {
	Wallet      WalletResponse      `json:"wallet"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionResponse is a single ledger entry.
type TransactionResponse struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// TransactionListResponse wraps a user's ledger history.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Count int                   `json:"count"`
}

// UsageResponse reports earning-cap consumption for the current windows.
type UsageResponse struct {
	DailyUsed   int64 `json:"daily_used"`
	DailyCap    int64 `json:"daily_cap"`
	MonthlyUsed int64 `json:"monthly_used"`
	MonthlyCap  int64 `json:"monthly_cap"`
}
