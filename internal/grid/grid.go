// Package grid builds and filters the immutable evaluation grids the checks
// run over. Filtering never mutates a grid; it produces a smaller copy.
package grid

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

// #region types
// Isotherm is one temperature with its ordered pressure samples.
type Isotherm struct {
	T         float64   `json:"t"`
	Pressures []float64 `json:"pressures"`
}

// Grid is the full evaluation grid: isotherms for C1/C2/C4 and saturation
// temperatures for C3. Immutable once constructed.
type Grid struct {
	Spec      string     `json:"spec"`
	Isotherms []Isotherm `json:"isotherms"`
	SatTemps  []float64  `json:"sat_temps,omitempty"`
}

// #endregion types

// #region parse
// Parse builds a rectangular grid from a spec like "T=220:300:10,p=1e5:5e6:5e5".
func Parse(spec string) (Grid, error) {
	parts := map[string]string{}
	for _, kv := range strings.Split(spec, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return Grid{}, fmt.Errorf("grid spec: malformed component %q", kv)
		}
		parts[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	tExpr, ok := parts["T"]
	if !ok {
		return Grid{}, fmt.Errorf("grid spec %q: missing T range", spec)
	}
	pExpr, ok := parts["p"]
	if !ok {
		return Grid{}, fmt.Errorf("grid spec %q: missing p range", spec)
	}

	temps, err := parseRange(tExpr)
	if err != nil {
		return Grid{}, fmt.Errorf("grid spec T range: %w", err)
	}
	pressures, err := parseRange(pExpr)
	if err != nil {
		return Grid{}, fmt.Errorf("grid spec p range: %w", err)
	}

	isotherms := make([]Isotherm, len(temps))
	for i, T := range temps {
		row := make([]float64, len(pressures))
		copy(row, pressures)
		isotherms[i] = Isotherm{T: T, Pressures: row}
	}
	return Grid{Spec: spec, Isotherms: isotherms}, nil
}

// parseRange expands "220:300:10" into [220, 230, ..., 300], including the
// stop value even when it is not on a step boundary.
func parseRange(expr string) ([]float64, error) {
	fields := strings.Split(expr, ":")
	if len(fields) != 3 {
		return nil, fmt.Errorf("want start:stop:step, got %q", expr)
	}
	var start, stop, step float64
	if _, err := fmt.Sscanf(expr, "%g:%g:%g", &start, &stop, &step); err != nil {
		return nil, fmt.Errorf("parse %q: %w", expr, err)
	}
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if stop < start {
		return nil, fmt.Errorf("stop %g below start %g", stop, start)
	}
	n := int(math.Floor((stop-start)/step)) + 1
	vals := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		vals = append(vals, start+float64(i)*step)
	}
	if math.Abs(vals[len(vals)-1]-stop) > 1e-12 {
		vals = append(vals, stop)
	}
	return vals, nil
}

// #endregion parse

// #region accessors
// Temps returns the isotherm temperatures in grid order.
func (g Grid) Temps() []float64 {
	out := make([]float64, len(g.Isotherms))
	for i, iso := range g.Isotherms {
		out[i] = iso.T
	}
	return out
}

// WithSatTemps returns a copy of the grid with the given saturation
// temperatures attached.
func (g Grid) WithSatTemps(temps []float64) Grid {
	out := g
	out.SatTemps = append([]float64(nil), temps...)
	return out
}

// #endregion accessors

// #region validate
// Validate fails fast on configuration errors before any check executes:
// empty grids, unsorted sequences, non-positive coordinates.
func (g Grid) Validate() error {
	if len(g.Isotherms) == 0 {
		return fmt.Errorf("grid has no temperatures")
	}
	prevT := math.Inf(-1)
	for _, iso := range g.Isotherms {
		if iso.T <= 0 {
			return fmt.Errorf("non-positive temperature %g", iso.T)
		}
		if iso.T <= prevT {
			return fmt.Errorf("temperatures not strictly ascending at %g", iso.T)
		}
		prevT = iso.T
		if len(iso.Pressures) < 3 {
			return fmt.Errorf("isotherm T=%g needs at least 3 pressures for interior derivatives, has %d", iso.T, len(iso.Pressures))
		}
		prevP := math.Inf(-1)
		for _, p := range iso.Pressures {
			if p <= 0 {
				return fmt.Errorf("non-positive pressure %g at T=%g", p, iso.T)
			}
			if p <= prevP {
				return fmt.Errorf("pressures not strictly ascending at T=%g", iso.T)
			}
			prevP = p
		}
	}
	for i := 1; i < len(g.SatTemps); i++ {
		if g.SatTemps[i] <= g.SatTemps[i-1] {
			return fmt.Errorf("saturation temperatures not strictly ascending at %g", g.SatTemps[i])
		}
	}
	return nil
}

// #endregion validate

// #region critical-band
// WithoutCriticalBand returns a new grid with every temperature (isotherm
// and saturation) inside [tc-halfWidth, tc+halfWidth] removed. Applied before
// any check executes; it changes which points are evaluated, never how they
// are judged.
func (g Grid) WithoutCriticalBand(tc, halfWidth float64) Grid {
	out := Grid{Spec: g.Spec}
	for _, iso := range g.Isotherms {
		if math.Abs(iso.T-tc) <= halfWidth {
			continue
		}
		out.Isotherms = append(out.Isotherms, iso)
	}
	for _, T := range g.SatTemps {
		if math.Abs(T-tc) <= halfWidth {
			continue
		}
		out.SatTemps = append(out.SatTemps, T)
	}
	return out
}

// #endregion critical-band

// #region single-phase
// FilterSinglePhase drops pressure samples inside a relative margin around
// the reference saturation pressure, per isotherm. Temperatures for which
// the saturation curve is undefined (supercritical, below triple) keep their
// full pressure rows.
func (g Grid) FilterSinglePhase(psat func(T float64) (float64, error), margin float64) Grid {
	out := Grid{Spec: g.Spec, SatTemps: g.SatTemps}
	for _, iso := range g.Isotherms {
		ps, err := psat(iso.T)
		if err != nil {
			out.Isotherms = append(out.Isotherms, iso)
			continue
		}
		kept := make([]float64, 0, len(iso.Pressures))
		for _, p := range iso.Pressures {
			if math.Abs(p-ps) < margin*ps {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) >= 3 {
			out.Isotherms = append(out.Isotherms, Isotherm{T: iso.T, Pressures: kept})
		}
	}
	return out
}

// #endregion single-phase

// #region random-subset
// RandomSubset returns a deterministic seeded subsample with at most nT
// temperatures and nP pressures per isotherm, preserving ascending order.
func (g Grid) RandomSubset(seed int64, nT, nP int) Grid {
	rng := rand.New(rand.NewSource(seed))
	out := Grid{Spec: g.Spec, SatTemps: g.SatTemps}

	tIdx := pickIndexes(rng, len(g.Isotherms), nT)
	for _, ti := range tIdx {
		iso := g.Isotherms[ti]
		pIdx := pickIndexes(rng, len(iso.Pressures), nP)
		row := make([]float64, 0, len(pIdx))
		for _, pi := range pIdx {
			row = append(row, iso.Pressures[pi])
		}
		out.Isotherms = append(out.Isotherms, Isotherm{T: iso.T, Pressures: row})
	}
	return out
}

// pickIndexes samples up to n distinct indexes from [0, total) in ascending order.
func pickIndexes(rng *rand.Rand, total, n int) []int {
	if n >= total {
		idx := make([]int, total)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	perm := rng.Perm(total)[:n]
	sort.Ints(perm)
	return perm
}

// #endregion random-subset

// #region defaults
// DefaultSpec returns the stock grid spec per fluid. The pressure sweep
// crosses the saturation line on purpose; callers filter to single phase
// against the reference before running checks.
func DefaultSpec(fluid string) string {
	switch strings.ToUpper(fluid) {
	case "CO2":
		return "T=230:300:10,p=1e5:5e6:2.5e5"
	case "N2":
		return "T=80:120:5,p=1e4:1e6:5e4"
	}
	return ""
}

// DefaultSatTemps returns the stock saturation-temperature samples per fluid.
func DefaultSatTemps(fluid string) []float64 {
	switch strings.ToUpper(fluid) {
	case "CO2":
		return []float64{230.0, 240.0, 260.0, 280.0}
	case "N2":
		return []float64{85.0, 95.0, 105.0, 115.0}
	}
	return nil
}

// #endregion defaults
