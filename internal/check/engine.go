package check

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/grid"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
)

// #region engine
// Engine binds a surrogate, a reference, and a tolerance config, and runs the
// consistency checks over a grid. Checks are independent apart from C2's data
// dependency on C1, so C1+C2, C3, and C4 run concurrently.
type Engine struct {
	surrogate provider.Provider
	reference provider.Reference
	cfg       Config
}

// New builds an engine. Config problems surface at Run time via Validate.
func New(sur provider.Provider, ref provider.Reference, cfg Config) *Engine {
	return &Engine{surrogate: sur, reference: ref, cfg: cfg}
}

// Run executes all checks over the grid and returns the results in canonical
// order (C1..C4). Provider domain errors are captured inside the individual
// Results; Run only errors on invalid config, invalid grid, or context
// cancellation.
func (e *Engine) Run(ctx context.Context, g grid.Grid) ([]Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("validate grid: %w", err)
	}

	results := make([]Result, len(IDs))
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r1, field := Monotonic(e.surrogate, g, e.cfg)
		results[0] = r1
		results[1] = Compressibility(field, e.cfg)
		return nil
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[2] = Clapeyron(e.surrogate, e.reference, g.SatTemps, e.cfg)
		return nil
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[3] = SpeedOfSound(e.surrogate, e.reference, soundTemps(g), e.cfg)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// #endregion engine

// #region runnable
// Runnable reports, per check, whether the given capability set supports it.
// Used by the inspect command before any evaluation happens.
func Runnable(caps provider.Capabilities) map[ID]bool {
	return map[ID]bool{
		C1Monotonic:       caps.Density,
		C2Compressibility: caps.Density,
		C3Clapeyron:       caps.Density && caps.Enthalpy && caps.PhaseSplit,
		C4SpeedOfSound:    caps.SpeedOfSound,
	}
}

// MissingCapability names the capability a check needs when Runnable reports
// false; empty for supported checks.
func MissingCapability(id ID, caps provider.Capabilities) string {
	switch id {
	case C1Monotonic, C2Compressibility:
		if !caps.Density {
			return "density"
		}
	case C3Clapeyron:
		switch {
		case !caps.PhaseSplit:
			return "phase_split"
		case !caps.Enthalpy:
			return "enthalpy"
		case !caps.Density:
			return "density"
		}
	case C4SpeedOfSound:
		if !caps.SpeedOfSound {
			return "speed_of_sound"
		}
	}
	return ""
}

// #endregion runnable

// #region sound-temps
// soundTemps picks the first, middle, and last grid temperatures for C4. The
// full sweep adds nothing: a^2 at one pressure varies smoothly in T, three
// samples pin the median down.
func soundTemps(g grid.Grid) []float64 {
	temps := g.Temps()
	switch len(temps) {
	case 0:
		return nil
	case 1, 2, 3:
		return temps
	}
	return []float64{temps[0], temps[len(temps)/2], temps[len(temps)-1]}
}

// #endregion sound-temps
