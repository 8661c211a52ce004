package check

import (
	"math"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/fd"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/grid"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/guardrail"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
)

// #region c1
// Monotonic runs C1: drho/dp|_T > -tol at every interior pressure point of
// every isotherm. It also returns the slope field so C2 can reuse the finite
// differences instead of recomputing them. A provider domain error marks the
// check failed with a note; it never aborts the run.
func Monotonic(sur provider.Provider, g grid.Grid, cfg Config) (Result, *SlopeField) {
	if !sur.Capabilities().Density {
		return skipped(C1Monotonic, "surrogate does not expose density"), nil
	}

	field := &SlopeField{}
	minSlope := math.Inf(1)
	positive, total := 0, 0
	var all []float64
	var domainNote string

scan:
	for _, iso := range g.Isotherms {
		diag := IsothermSlopes{T: iso.T}
		rhoAt := func(p float64) (float64, error) { return sur.Density(iso.T, p) }

		for k := 1; k < len(iso.Pressures)-1; k++ {
			p := iso.Pressures[k]
			step := cfg.PressureStep
			if step == 0 {
				step = 0.5 * math.Min(p-iso.Pressures[k-1], iso.Pressures[k+1]-p)
			}

			slope, err := fd.Derivative(rhoAt, p, step)
			if err != nil {
				domainNote = err.Error()
				field.Isotherms = append(field.Isotherms, diag)
				break scan
			}
			rho, err := sur.Density(iso.T, p)
			if err != nil {
				domainNote = err.Error()
				field.Isotherms = append(field.Isotherms, diag)
				break scan
			}

			diag.Pressures = append(diag.Pressures, p)
			diag.Slopes = append(diag.Slopes, slope)
			diag.Rhos = append(diag.Rhos, rho)
			all = append(all, slope)
			if slope < minSlope {
				minSlope = slope
			}
			if slope > 0 {
				positive++
			}
			total++
		}
		field.Isotherms = append(field.Isotherms, diag)
	}

	if domainNote != "" {
		field.Note = domainNote
		res := failed(C1Monotonic, domainNote)
		res.Isotherms = field.Isotherms
		return res, field
	}

	passed := true
	for _, s := range all {
		if s <= -cfg.TolMonotonic {
			passed = false
			break
		}
	}
	near := guardrail.NearSpinodal(all, cfg.TolMonotonic)

	res := evaluated(C1Monotonic, passed, near)
	res.Metric = &minSlope
	frac := float64(positive) / float64(total)
	res.FracPositive = &frac
	res.Isotherms = field.Isotherms
	return res, field
}

// #endregion c1

// #region c2
// Compressibility runs C2: kappa_T = (drho/dp)/rho > -tol everywhere. It
// consumes C1's slope field directly; support follows C1 (both need only
// density).
func Compressibility(field *SlopeField, cfg Config) Result {
	if field == nil {
		return skipped(C2Compressibility, "surrogate does not expose density")
	}
	if field.Note != "" {
		return failed(C2Compressibility, field.Note)
	}

	minKappa := math.Inf(1)
	var all []float64
	var diags []IsothermSlopes

	for _, iso := range field.Isotherms {
		d := IsothermSlopes{T: iso.T, Pressures: iso.Pressures, Slopes: iso.Slopes, Rhos: iso.Rhos}
		for i, slope := range iso.Slopes {
			rho := iso.Rhos[i]
			if rho < 1e-30 {
				rho = 1e-30
			}
			kappa := slope / rho
			d.Kappas = append(d.Kappas, kappa)
			all = append(all, kappa)
			if kappa < minKappa {
				minKappa = kappa
			}
		}
		diags = append(diags, d)
	}

	if len(all) == 0 {
		res := failed(C2Compressibility, "no evaluable slope points")
		res.Isotherms = diags
		return res
	}

	passed := true
	for _, k := range all {
		if k <= -cfg.TolMonotonic {
			passed = false
			break
		}
	}
	near := guardrail.NearSpinodal(all, cfg.TolMonotonic)

	res := evaluated(C2Compressibility, passed, near)
	res.Metric = &minKappa
	res.Isotherms = diags
	return res
}

// #endregion c2
