package acoustic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnvironment marks temperature, salinity, depth or pH outside a formula's validated range.
	ErrInvalidEnvironment = errors.New("invalid environment")
	// ErrInvalidScattererGeometry marks a non-positive radius, frequency or sound speed.
	ErrInvalidScattererGeometry = errors.New("invalid scatterer geometry")
	// ErrInvalidMaterial marks non-positive sphere properties or shear speed >= longitudinal speed.
	ErrInvalidMaterial = errors.New("invalid material")
	// ErrOutOfValidityRange is advisory: the model was evaluated outside its declared ka range.
	ErrOutOfValidityRange = errors.New("out of validity range")
	// ErrConvergenceIncomplete is advisory: the modal series hit its mode ceiling.
	ErrConvergenceIncomplete = errors.New("convergence incomplete")
	// ErrNumericalInstability is fatal for the call: working precision could not hold the result.
	ErrNumericalInstability = errors.New("numerical instability")
	ErrUnknownModel         = errors.New("unknown model")
)

// RangeError reports a quantity outside the validated range of a named formula.
type RangeError struct {
	Formula  string
	Quantity string
	Value    float64
	Min, Max float64
	Kind     error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s %s = %g outside [%g, %g]", e.Kind, e.Formula, e.Quantity, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return e.Kind
}

// ValidityError is returned as a warning next to a usable result.
type ValidityError struct {
	Model string
	Ka    float64
	MaxKa float64
}

func (e *ValidityError) Error() string {
	return fmt.Sprintf("%v: %s evaluated at ka = %.4g (valid up to %.4g)", ErrOutOfValidityRange, e.Model, e.Ka, e.MaxKa)
}

func (e *ValidityError) Unwrap() error {
	return ErrOutOfValidityRange
}

type ConvergenceError struct {
	Modes     int
	LastTerm  float64 // relative to the partial sum
	Tolerance float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v: %d modes summed, last relative term %.3g > %.3g", ErrConvergenceIncomplete, e.Modes, e.LastTerm, e.Tolerance)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergenceIncomplete
}

// InstabilityError carries what a caller needs to retry at a higher precision.
type InstabilityError struct {
	Mode      int
	Ka        float64
	Precision uint // [bits]
	LostBits  int
	Reason    string
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("%v: %s at mode %d (ka = %.4g, %d bits working precision, %d bits lost)",
		ErrNumericalInstability, e.Reason, e.Mode, e.Ka, e.Precision, e.LostBits)
}

func (e *InstabilityError) Unwrap() error {
	return ErrNumericalInstability
}

// IsAdvisory reports whether err only qualifies a result instead of replacing it.
func IsAdvisory(err error) bool {
	return errors.Is(err, ErrOutOfValidityRange) || errors.Is(err, ErrConvergenceIncomplete)
}
