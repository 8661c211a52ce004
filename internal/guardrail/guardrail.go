// Package guardrail post-processes check intermediates into fragility flags
// and severities. It is a pure pass over already-computed values: a guardrail
// never changes a pass/fail outcome, it only escalates severity.
package guardrail

// #region severity
// Severity labels a check outcome for reporting.
type Severity string

const (
	SeverityInfo Severity = "info"
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

// #endregion severity

// #region near-spinodal
// EpsGuard is the near-spinodal threshold derived from the check tolerance.
func EpsGuard(tol float64) float64 {
	eps := 10.0 * tol
	if eps < 1e-9 {
		eps = 1e-9
	}
	return eps
}

// NearSpinodal reports whether any stability derivative sits in [0, epsGuard):
// non-negative but so close to zero that the state is near the mechanical
// stability boundary. Values are typically drho/dp slopes or kappa_T.
func NearSpinodal(values []float64, tol float64) bool {
	eps := EpsGuard(tol)
	for _, v := range values {
		if v >= 0 && v < eps {
			return true
		}
	}
	return false
}

// #endregion near-spinodal

// #region severity-derivation
// SeverityFor maps a pass/fail outcome and a near-spinodal flag to a
// severity. Failure always dominates; the flag can only escalate a pass
// from info to warn.
func SeverityFor(passed, nearSpinodal bool) Severity {
	if !passed {
		return SeverityFail
	}
	if nearSpinodal {
		return SeverityWarn
	}
	return SeverityInfo
}

// #endregion severity-derivation

// #region critical-band
// CriticalBand describes the opt-in excluded temperature band around the
// critical point. It is applied at grid construction, never per check.
type CriticalBand struct {
	Enabled   bool
	HalfWidth float64 // [K]
}

// DefaultCriticalBand returns the disabled default with the stock half-width.
func DefaultCriticalBand() CriticalBand {
	return CriticalBand{Enabled: false, HalfWidth: 5.0}
}

// #endregion critical-band
