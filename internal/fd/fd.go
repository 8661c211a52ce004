// Package fd provides the centered finite-difference primitive shared by the
// consistency checks. Step sizes are fixed by configuration, not adaptive;
// that trades some truncation error for predictable behavior near domain
// boundaries, and is a documented limitation.
package fd

import "fmt"

// #region derivative
// Func is a scalar function of one variable that may fail with a provider
// domain error.
type Func func(x float64) (float64, error)

// Derivative computes the centered difference (f(x+step) - f(x-step)) / (2 step).
// The caller must keep x-step and x+step inside the provider's valid domain;
// errors from f propagate unchanged. Pure and safe for concurrent use.
func Derivative(f Func, x, step float64) (float64, error) {
	if step <= 0 {
		return 0, fmt.Errorf("finite-difference step must be positive, got %g", step)
	}
	hi, err := f(x + step)
	if err != nil {
		return 0, err
	}
	lo, err := f(x - step)
	if err != nil {
		return 0, err
	}
	return (hi - lo) / (2.0 * step), nil
}

// #endregion derivative
