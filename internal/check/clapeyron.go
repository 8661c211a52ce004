package check

import (
	"fmt"
	"math"
	"sort"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/fd"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
)

// #region c3
// Clapeyron runs C3: along the saturation line, the reference slope
// LHS = dP_sat/dT must agree with the surrogate-derived RHS = dh / (T dv)
// within a median relative error of cfg.TolClapeyron (boundary inclusive).
// The saturation curve is only ever differentiated on the reference; the
// surrogate contributes through its phase split.
func Clapeyron(sur provider.Provider, ref provider.Reference, satTemps []float64, cfg Config) Result {
	caps := sur.Capabilities()
	if !caps.Density || !caps.Enthalpy || !caps.PhaseSplit {
		return skipped(C3Clapeyron, "surrogate does not expose phase_split/enthalpy/density")
	}
	if len(satTemps) == 0 {
		return skipped(C3Clapeyron, "no saturation temperatures sampled")
	}

	psat := func(T float64) (float64, error) { return ref.SaturationPressure(T) }

	diag := &SaturationDiag{}
	for _, T := range satTemps {
		lhs, err := fd.Derivative(psat, T, cfg.SatStep)
		if err != nil {
			// outside the reference's saturation range; skip this sample
			continue
		}
		if lhs == 0 {
			res := failed(C3Clapeyron, fmt.Sprintf("reference saturation slope is zero at T=%g", T))
			res.Saturation = diag
			return res
		}

		split, err := sur.PhaseSplit(T)
		if err != nil {
			res := failed(C3Clapeyron, err.Error())
			res.Saturation = diag
			return res
		}
		dv := 1.0/split.Vapor.Rho - 1.0/split.Liquid.Rho
		if dv == 0 {
			res := failed(C3Clapeyron, fmt.Sprintf("degenerate phase split at T=%g: equal phase volumes", T))
			res.Saturation = diag
			return res
		}
		rhs := (split.Vapor.H - split.Liquid.H) / (T * dv)

		diag.Temps = append(diag.Temps, T)
		diag.LHS = append(diag.LHS, lhs)
		diag.RHS = append(diag.RHS, rhs)
		diag.RelErrors = append(diag.RelErrors, math.Abs(lhs-rhs)/math.Abs(lhs))
	}

	if len(diag.Temps) == 0 {
		return skipped(C3Clapeyron, "no saturation temperatures inside the reference's valid range")
	}

	med := median(diag.RelErrors)
	passed := med <= cfg.TolClapeyron
	res := evaluated(C3Clapeyron, passed, false)
	res.Metric = &med
	res.Saturation = diag
	return res
}

// #endregion c3

// #region median
// median of the values; mean of the middle pair for even counts. Preferred
// over the mean because a single near-critical outlier temperature should
// not dominate the verdict.
func median(values []float64) float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return 0.5 * (s[n/2-1] + s[n/2])
}

// #endregion median
