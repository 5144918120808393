package service

import (
	"dah-coin-engine/internal/core/domain"
	"dah-coin-engine/pkg/apperror"
)

// splitByAge divides an allowed credit between the available and
// locked-for-minor buckets. Pure: availableDelta + lockedDelta == allowed
// always. Minors (13-17) get as close to a 50/50 split as integers permit;
// an odd remainder goes to available so the user-visible balance gets the
// extra coin. Adults take the whole amount as available.
func splitByAge(allowed int64, age int) (availableDelta, lockedDelta int64, err error) {
	if age < domain.MinimumAge {
		return 0, 0, apperror.ErrInvalidAge(age)
	}
	if age >= domain.AdultAge {
		return allowed, 0, nil
	}

	lockedDelta = allowed / 2
	availableDelta = allowed - lockedDelta
	return availableDelta, lockedDelta, nil
}
