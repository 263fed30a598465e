package wallet

import (
	"errors"
	"fmt"
)

// ErrInsufficientBalance is returned by Split when the balance holds fewer
// units than requested.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Balance is an opaque container of indivisible currency units.
// Value moves between balances only through Split and Join, so the total
// number of units across all balances stays constant unless New mints more.
type Balance struct {
	units int64
}

// Zero returns an empty balance.
func Zero() *Balance {
	return &Balance{}
}

// New mints a balance holding the given number of units. Callers are
// responsible for debiting whatever account backs the units first.
func New(units int64) *Balance {
	if units < 0 {
		units = 0
	}
	return &Balance{units: units}
}

// Value reports the number of units currently held.
func (b *Balance) Value() int64 {
	return b.units
}

// Split carves units off into a new balance, leaving the remainder behind.
func (b *Balance) Split(units int64) (*Balance, error) {
	if units < 0 {
		return nil, fmt.Errorf("split of %d units: %w", units, ErrInsufficientBalance)
	}
	if units > b.units {
		return nil, fmt.Errorf("split of %d units from %d: %w", units, b.units, ErrInsufficientBalance)
	}
	b.units -= units
	return &Balance{units: units}, nil
}

// Join drains other into b. other is left empty so the same units can never
// be joined twice.
func (b *Balance) Join(other *Balance) {
	b.units += other.units
	other.units = 0
}
