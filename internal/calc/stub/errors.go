package stub

import (
	"errors"
	"fmt"
)

// ErrStressUndeterminable means the temperature/service-life point lies
// outside the populated region of the allowable-stress table, so the
// check cannot proceed past step 1.
var ErrStressUndeterminable = errors.New("allowable stress undeterminable for the given temperature and service life")

// DomainError reports an intermediate formula whose input left its valid
// domain, such as a negative radicand or a wall consumed by the
// corrosion allowance. Step numbers follow the printed calculation.
type DomainError struct {
	Step   int
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("calculation inputs out of valid domain at step %d: %s", e.Step, e.Reason)
}

// ValidationError reports a raw input rejected before the pipeline runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
