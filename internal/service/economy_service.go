package service

import (
	"context"
	"fmt"
	"time"

	"dah-coin-engine/internal/core/domain"
	"dah-coin-engine/internal/core/ports"
	"dah-coin-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 50

// EconomyServiceImpl implements ports.EconomyService. All balance writes
// run inside a database transaction holding a row lock on the user's
// wallet, so concurrent credits and spends for the same user serialize and
// the ledger append and balance update commit together or not at all.
type EconomyServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	rates      *RateTable
	caps       *CapEnforcer
	log        zerolog.Logger
	now        func() time.Time
}

// NewEconomyService creates a new EconomyServiceImpl.
func NewEconomyService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	rates *RateTable,
	caps *CapEnforcer,
	log zerolog.Logger,
) *EconomyServiceImpl {
	return &EconomyServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		rates:      rates,
		caps:       caps,
		log:        log,
		now:        time.Now,
	}
}

// CreditCoins awards coins for a platform action.
// Pipeline: rate table (or override) -> cap enforcer -> age split -> one
// ledger row of the capped amount + balance update, committed atomically.
func (s *EconomyServiceImpl) CreditCoins(ctx context.Context, req ports.CreditRequest) (*domain.CreditResult, error) {
	if req.Age < domain.MinimumAge {
		return nil, apperror.ErrInvalidAge(req.Age)
	}

	var proposed int64
	if req.AmountOverride != nil {
		if *req.AmountOverride <= 0 {
			return nil, apperror.ErrInvalidAmount()
		}
		proposed = *req.AmountOverride
	} else {
		base, err := s.rates.BaseAmount(req.Action)
		if err != nil {
			return nil, err
		}
		proposed = base
	}

	now := s.now().UTC()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Wallets are created lazily; insert a zero row first so first-time
	// users have a row to lock.
	if err := s.walletRepo.CreateIfAbsent(ctx, dbTx, req.UserID, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ensure wallet: %w", err))
	}

	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet missing after create: %s", req.UserID))
	}

	// Usage is read inside the same transaction, after the lock, so the
	// cap check sees a consistent ledger.
	dailyUsed, err := s.txRepo.SumCreditsSinceTx(ctx, dbTx, req.UserID, startOfDayUTC(now))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("daily usage: %w", err))
	}
	monthlyUsed, err := s.txRepo.SumCreditsSinceTx(ctx, dbTx, req.UserID, startOfMonthUTC(now))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("monthly usage: %w", err))
	}

	allowed, capped, reason := s.caps.Allow(proposed, dailyUsed, monthlyUsed)

	if allowed == 0 {
		// Cap exhausted. Still a success; no zero-amount ledger noise, but
		// the lazily created wallet row is kept.
		if err := dbTx.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		s.log.Debug().
			Str("user_id", req.UserID).
			Str("action", string(req.Action)).
			Str("cap_reason", string(reason)).
			Msg("credit capped to zero")
		return &domain.CreditResult{
			Wallet:         wallet,
			CreditedAmount: 0,
			Capped:         capped,
			CapReason:      reason,
		}, nil
	}

	availableDelta, lockedDelta, err := splitByAge(allowed, req.Age)
	if err != nil {
		return nil, err
	}

	wallet.Available += availableDelta
	wallet.LockedForMinor += lockedDelta
	wallet.UpdatedAt = now

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, req.UserID, wallet.Available, wallet.LockedForMinor); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balances: %w", err))
	}

	entry := &domain.Transaction{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Amount:      allowed,
		Description: s.creditDescription(req),
		CreatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", req.UserID).
		Str("action", string(req.Action)).
		Int64("credited", allowed).
		Int64("available_delta", availableDelta).
		Int64("locked_delta", lockedDelta).
		Bool("capped", capped).
		Msg("coins credited")

	return &domain.CreditResult{
		Wallet:         wallet,
		CreditedAmount: allowed,
		Capped:         capped,
		CapReason:      reason,
	}, nil
}

// SpendCoins draws from the available balance. The funds check and the
// decrement happen under the same wallet row lock, so two concurrent
// spends cannot both succeed against insufficient funds.
func (s *EconomyServiceImpl) SpendCoins(ctx context.Context, req ports.SpendRequest) (*domain.SpendResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	now := s.now().UTC()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.CreateIfAbsent(ctx, dbTx, req.UserID, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ensure wallet: %w", err))
	}

	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet missing after create: %s", req.UserID))
	}

	if !wallet.CanSpend(req.Amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	wallet.Available -= req.Amount
	wallet.UpdatedAt = now

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, req.UserID, wallet.Available, wallet.LockedForMinor); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balances: %w", err))
	}

	entry := &domain.Transaction{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Amount:      -req.Amount,
		Description: req.Reason,
		CreatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", req.UserID).
		Int64("amount", req.Amount).
		Str("reason", req.Reason).
		Int64("available", wallet.Available).
		Msg("coins spent")

	return &domain.SpendResult{Wallet: wallet, Transaction: entry}, nil
}

// GetWallet returns the current snapshot. Unknown users read back as a
// zero wallet rather than an error.
func (s *EconomyServiceImpl) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return domain.NewWallet(userID, s.now().UTC()), nil
	}
	return wallet, nil
}

// GetTransactionHistory returns up to limit ledger entries, most recent
// first. A fresh call re-queries; the sequence is not restartable.
func (s *EconomyServiceImpl) GetTransactionHistory(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.txRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return entries, nil
}

// GetDailyUsed returns coins earned since UTC midnight.
func (s *EconomyServiceImpl) GetDailyUsed(ctx context.Context, userID string) (int64, error) {
	used, err := s.txRepo.SumCreditsSince(ctx, userID, startOfDayUTC(s.now()))
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("daily usage: %w", err))
	}
	return used, nil
}

// GetMonthlyUsed returns coins earned since the first of the UTC month.
func (s *EconomyServiceImpl) GetMonthlyUsed(ctx context.Context, userID string) (int64, error) {
	used, err := s.txRepo.SumCreditsSince(ctx, userID, startOfMonthUTC(s.now()))
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("monthly usage: %w", err))
	}
	return used, nil
}

func (s *EconomyServiceImpl) creditDescription(req ports.CreditRequest) string {
	if req.Description != "" {
		return req.Description
	}
	return fmt.Sprintf("Earned for %s", req.Action)
}
