package mathx

import "fmt"

// ErrOutOfDomain is returned when a function is evaluated outside its domain.
type ErrOutOfDomain struct {
	X     float64
	Range Range
}

func (e *ErrOutOfDomain) Error() string {
	return fmt.Sprintf("mathx: x=%g out of domain [%g, %g]", e.X, e.Range.Min, e.Range.Max)
}

// ErrNumeric is returned when a numeric evaluation (integration, root
// finding) fails to converge or produces a non-finite result.
type ErrNumeric struct {
	Op     string
	Reason string
}

func (e *ErrNumeric) Error() string {
	return fmt.Sprintf("mathx: numeric failure in %s: %s", e.Op, e.Reason)
}
