package check

import (
	"fmt"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/guardrail"
)

// #region check-ids
// ID names a consistency check.
type ID string

const (
	C1Monotonic       ID = "C1_monotonic"
	C2Compressibility ID = "C2_compressibility"
	C3Clapeyron       ID = "C3_clapeyron"
	C4SpeedOfSound    ID = "C4_speed_of_sound"
)

// IDs lists all checks in canonical order.
var IDs = []ID{C1Monotonic, C2Compressibility, C3Clapeyron, C4SpeedOfSound}

// #endregion check-ids

// #region config
// Config holds the tolerances and step sizes for a run.
type Config struct {
	TolMonotonic float64 // slope tolerance for C1/C2 [-]
	TolClapeyron float64 // median relative-error tolerance for C3 [-]
	TolSound     float64 // median relative-error tolerance for C4 [-]
	PRef         float64 // fixed reference pressure for C4 [Pa]
	PressureStep float64 // FD pressure step; 0 derives half the local grid spacing [Pa]
	SatStep      float64 // FD temperature step for dP_sat/dT [K]
}

// DefaultConfig returns the stock tolerances.
func DefaultConfig() Config {
	return Config{
		TolMonotonic: 1e-6,
		TolClapeyron: 0.1,
		TolSound:     0.2,
		PRef:         1e5,
		PressureStep: 0,
		SatStep:      1e-2,
	}
}

// Validate fails fast on non-positive tolerances or steps, before any check
// executes.
func (c Config) Validate() error {
	if c.TolMonotonic <= 0 {
		return fmt.Errorf("monotonic tolerance must be positive, got %g", c.TolMonotonic)
	}
	if c.TolClapeyron <= 0 {
		return fmt.Errorf("clapeyron tolerance must be positive, got %g", c.TolClapeyron)
	}
	if c.TolSound <= 0 {
		return fmt.Errorf("speed-of-sound tolerance must be positive, got %g", c.TolSound)
	}
	if c.PRef <= 0 {
		return fmt.Errorf("reference pressure must be positive, got %g", c.PRef)
	}
	if c.PressureStep < 0 {
		return fmt.Errorf("pressure step must be non-negative, got %g", c.PressureStep)
	}
	if c.SatStep <= 0 {
		return fmt.Errorf("saturation FD step must be positive, got %g", c.SatStep)
	}
	return nil
}

// #endregion config

// #region diagnostics
// IsothermSlopes holds the per-isotherm intermediates shared by C1 and C2:
// interior pressure points with the FD slope and density at each.
type IsothermSlopes struct {
	T         float64   `json:"t"`
	Pressures []float64 `json:"pressures"`
	Slopes    []float64 `json:"slopes"`
	Rhos      []float64 `json:"rhos"`
	Kappas    []float64 `json:"kappas,omitempty"` // filled by C2
}

// SlopeField is C1's intermediate output, consumed by C2 as an explicit data
// dependency so the finite differences are computed once. Note carries the
// domain-error text when the scan was cut short, so C2 fails for the same
// reason instead of judging an incomplete field.
type SlopeField struct {
	Isotherms []IsothermSlopes
	Note      string
}

// SaturationDiag holds the per-temperature C3 diagnostics.
type SaturationDiag struct {
	Temps     []float64 `json:"temps"`
	LHS       []float64 `json:"lhs"` // dP_sat/dT from the reference
	RHS       []float64 `json:"rhs"` // dh / (T dv) from the surrogate split
	RelErrors []float64 `json:"rel_errors"`
}

// SoundDiag holds the per-temperature C4 diagnostics.
type SoundDiag struct {
	Temps     []float64 `json:"temps"`
	PRef      float64   `json:"p_ref"`
	A2Ref     []float64 `json:"a2_ref"`
	A2Sur     []float64 `json:"a2_sur"`
	RelErrors []float64 `json:"rel_errors"`
}

// #endregion diagnostics

// #region result
// Result is the structured outcome of one check.
//
// Invariants: Passed is nil iff Supported is false; severity fail implies
// *Passed == false; severity warn implies *Passed == true with a guardrail
// condition met.
type Result struct {
	ID           ID                  `json:"id"`
	Supported    bool                `json:"supported"`
	Passed       *bool               `json:"passed"` // nil when unsupported
	Severity     guardrail.Severity  `json:"severity"`
	Metric       *float64            `json:"metric"` // min slope (C1/C2) or median rel error (C3/C4)
	FracPositive *float64            `json:"fraction_positive,omitempty"`
	NearSpinodal bool                `json:"near_spinodal,omitempty"`
	Note         string              `json:"note,omitempty"`
	Isotherms    []IsothermSlopes    `json:"isotherms,omitempty"`
	Saturation   *SaturationDiag     `json:"saturation,omitempty"`
	Sound        *SoundDiag          `json:"sound,omitempty"`
}

// skipped builds the terminal result for a capability-absent check.
func skipped(id ID, note string) Result {
	return Result{
		ID:       id,
		Severity: guardrail.SeverityInfo,
		Note:     note,
	}
}

// evaluated builds a supported result with derived severity.
func evaluated(id ID, passed, nearSpinodal bool) Result {
	p := passed
	return Result{
		ID:           id,
		Supported:    true,
		Passed:       &p,
		Severity:     guardrail.SeverityFor(passed, nearSpinodal),
		NearSpinodal: nearSpinodal,
	}
}

// failed builds a supported fail-severity result with a diagnostic note,
// used when a provider domain error interrupts a check.
func failed(id ID, note string) Result {
	r := evaluated(id, false, false)
	r.Note = note
	return r
}

// #endregion result
