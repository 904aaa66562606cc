package listop

import "errors"

// Domain errors. The runner converts these into a failed result instead of
// propagating them; anything else that escapes a stage is a hard fault for
// the invoking runtime.
//
// Serial bounds violations are deliberately part of this set so that every
// configuration-level mistake surfaces through the same structured channel.
var (
	// ErrInvalidFilterValue reports an operand whose resolved type does not
	// fit the element kind being filtered.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrInvalidKey reports an unknown file attribute key, an order key, or
	// a key/operand combination that has no defined comparison.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidCondition reports a comparison operator outside the set
	// valid for the element kind.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrSerialOutOfRange reports an extract serial outside [1, length].
	ErrSerialOutOfRange = errors.New("serial index out of range")
)

// domainErrors is the closed set checked by isDomainError.
var domainErrors = []error{
	ErrInvalidFilterValue,
	ErrInvalidKey,
	ErrInvalidCondition,
	ErrSerialOutOfRange,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
