package skyline

import (
	"errors"
	"fmt"
	"math"
)

// Precondition violations reported by Validate.
var (
	ErrNotFinite         = errors.New("coordinates and height must be finite numbers")
	ErrInvertedEdges     = errors.New("left edge must be less than right edge")
	ErrNonPositiveHeight = errors.New("height must be greater than 0")
)

// ErrUnbalancedSweep means start and end events did not pair up.
var ErrUnbalancedSweep = errors.New("sweep finished with active heights")

// BuildingError identifies the building that broke a precondition.
type BuildingError struct {
	Index    int
	Building Building
	Err      error
}

func (e *BuildingError) Error() string {
	return fmt.Sprintf("building %d [%g, %g, %g]: %v",
		e.Index, e.Building.Left, e.Building.Right, e.Building.Height, e.Err)
}

func (e *BuildingError) Unwrap() error { return e.Err }

// Validate checks every building and returns a *BuildingError for the first
// one that violates a precondition.
func Validate(buildings []Building) error {
	for i, b := range buildings {
		var err error
		switch {
		case !finite(b.Left) || !finite(b.Right) || !finite(b.Height):
			err = ErrNotFinite
		case b.Left >= b.Right:
			err = ErrInvertedEdges
		case b.Height <= 0:
			err = ErrNonPositiveHeight
		}
		if err != nil {
			return &BuildingError{Index: i, Building: b, Err: err}
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
