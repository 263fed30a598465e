package engine

import "errors"

// Every engine operation either fully succeeds or aborts with exactly one
// of these failure kinds, usually wrapped with context via %w. Controllers
// map them to HTTP status codes with Code.
var (
	ErrInvalidConfiguration  = errors.New("invalid lottery configuration")
	ErrAuthorizationMismatch = errors.New("token does not authorize this lottery")
	ErrAlreadyResolved       = errors.New("lottery already resolved")
	ErrAlreadyCancelled      = errors.New("lottery cancelled")
	ErrNotYetEligible        = errors.New("not yet eligible")
	ErrInsufficientPayment   = errors.New("payment below ticket price")
	ErrNumberUnavailable     = errors.New("ticket number unavailable")
	ErrNothingToClaim        = errors.New("nothing to claim")
	ErrRecordNotFound        = errors.New("record not found")
)

// Code returns a machine-readable code for an engine error, or "UNKNOWN"
// for anything outside the taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidConfiguration):
		return "INVALID_CONFIGURATION"
	case errors.Is(err, ErrAuthorizationMismatch):
		return "AUTHORIZATION_MISMATCH"
	case errors.Is(err, ErrAlreadyResolved):
		return "ALREADY_RESOLVED"
	case errors.Is(err, ErrAlreadyCancelled):
		return "ALREADY_CANCELLED"
	case errors.Is(err, ErrNotYetEligible):
		return "NOT_YET_ELIGIBLE"
	case errors.Is(err, ErrInsufficientPayment):
		return "INSUFFICIENT_PAYMENT"
	case errors.Is(err, ErrNumberUnavailable):
		return "NUMBER_UNAVAILABLE"
	case errors.Is(err, ErrNothingToClaim):
		return "NOTHING_TO_CLAIM"
	case errors.Is(err, ErrRecordNotFound):
		return "RECORD_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}
