package service

import (
	"time"

	"dah-coin-engine/config"
	"dah-coin-engine/internal/core/domain"
)

// CapEnforcer truncates proposed credits to the per-user daily and monthly
// earning caps. Pure: the caller supplies the already-earned totals for the
// current windows. Caps are flat across users; they are taken from config
// so tiered caps could later be injected per call without redesign.
type CapEnforcer struct {
	dailyCap   int64
	monthlyCap int64
}

// NewCapEnforcer builds an enforcer from economy config.
func NewCapEnforcer(cfg config.EconomyConfig) *CapEnforcer {
	return &CapEnforcer{
		dailyCap:   cfg.DailyCap,
		monthlyCap: cfg.MonthlyCap,
	}
}

// Allow returns how much of proposed may be credited given the usage
// already accumulated this day and month. allowed is
// min(proposed, daily headroom, monthly headroom) floored at zero; a zero
// result is a normal outcome, not an error. When both caps truncate with
// equal headroom the reason is CapReasonBoth, otherwise the cap with the
// smaller headroom binds.
func (e *CapEnforcer) Allow(proposed, dailyUsed, monthlyUsed int64) (allowed int64, capped bool, reason domain.CapReason) {
	dailyRoom := e.dailyCap - dailyUsed
	if dailyRoom < 0 {
		dailyRoom = 0
	}
	monthlyRoom := e.monthlyCap - monthlyUsed
	if monthlyRoom < 0 {
		monthlyRoom = 0
	}

	allowed = proposed
	if dailyRoom < allowed {
		allowed = dailyRoom
	}
	if monthlyRoom < allowed {
		allowed = monthlyRoom
	}

	if allowed >= proposed {
		return proposed, false, domain.CapReasonNone
	}

	dailyBinds := dailyRoom < proposed && dailyRoom <= monthlyRoom
	monthlyBinds := monthlyRoom < proposed && monthlyRoom <= dailyRoom
	switch {
	case dailyBinds && monthlyBinds:
		reason = domain.CapReasonBoth
	case monthlyBinds:
		reason = domain.CapReasonMonthly
	default:
		reason = domain.CapReasonDaily
	}
	return allowed, true, reason
}

// Earning windows are canonical UTC calendar windows. The day boundary is
// 00:00:00 UTC and the month boundary is the first of the month, 00:00:00
// UTC, regardless of the user's local timezone.

// startOfDayUTC returns the UTC midnight preceding t.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfMonthUTC returns the first instant of t's UTC calendar month.
func startOfMonthUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
