package goderiv

import "github.com/pkg/errors"

// Construction and differentiation failures. These are structural, not
// transient: retrying the same call cannot succeed, and a failing
// constructor allocates nothing. Callers test with errors.Is.
var (
	// ErrDivisionByZero is returned by DivOf when the divisor is the
	// constant zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrLogOfZero is returned by LnOf when the argument is the constant
	// zero.
	ErrLogOfZero = errors.New("logarithm of zero")

	// ErrUnsupportedDifferentiation is returned by Diff for a power whose
	// base and exponent are both constant or both non-constant.
	ErrUnsupportedDifferentiation = errors.New("unsupported differentiation")
)
