package service

import (
	"dah-coin-engine/internal/core/domain"
	"dah-coin-engine/pkg/apperror"
)

// RateTable maps each registered action kind to its base coin reward.
// Static and side-effect free; quest and game awards bypass it entirely
// via CreditRequest.AmountOverride.
type RateTable struct {
	rates map[domain.ActionKind]int64
}

// NewRateTable returns the platform rate table.
func NewRateTable() *RateTable {
	return &RateTable{
		rates: map[domain.ActionKind]int64{
			domain.ActionPostCreated:    5,
			domain.ActionVideoPosted:    8,
			domain.ActionListingCreated: 6,
			domain.ActionLikeGiven:      1,
			domain.ActionCommentPosted:  2,
			domain.ActionDailyLogin:     10,
		},
	}
}

// BaseAmount returns the base reward for an action kind. An unregistered
// kind is a caller bug and fails loudly rather than defaulting to zero.
func (rt *RateTable) BaseAmount(kind domain.ActionKind) (int64, error) {
	amount, ok := rt.rates[kind]
	if !ok {
		return 0, apperror.ErrUnknownActionKind(string(kind))
	}
	return amount, nil
}
