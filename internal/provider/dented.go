package provider

// #region dented
// Dented is a deliberately inconsistent surrogate used for demos and
// negative tests:
//
//   - its density has a quadratic dent giving a negative drho/dp region
//     near p ~ 2 MPa, so C1/C2 fail;
//   - its enthalpy jump across the saturation line is spuriously small,
//     so C3 fails.
//
// Saturation pressures and phase densities are borrowed from the reference
// to keep the numbers plausible; only the inconsistencies are fabricated.
type Dented struct {
	ref Reference
}

// NewDented wraps a reference provider for the given fluid.
func NewDented(ref Reference) *Dented {
	return &Dented{ref: ref}
}

// Name identifies the provider in summaries and capability tables.
func (d *Dented) Name() string { return "dented" }

// Fluid returns the fluid symbol.
func (d *Dented) Fluid() string { return d.ref.Fluid() }

// Capabilities reports density, enthalpy, and phase split; no speed of sound.
func (d *Dented) Capabilities() Capabilities {
	return Capabilities{Density: true, Enthalpy: true, PhaseSplit: true}
}

// #endregion dented

// #region properties
// Density has a small positive base slope and a quadratic dent centered at
// 2 MPa strong enough to flip the slope sign past the center:
//
//	rho(p) = a0 + a1 (p - pRef) - B (p - p0)^2 / S + tiny T modulation
//	drho/dp = a1 - 2 B (p - p0) / S
func (d *Dented) Density(T, p float64) (float64, error) {
	const (
		a0   = 200.0 // baseline level [kg/m^3]
		a1   = 8.0e-7
		pRef = 1.0e5
		p0   = 2.0e6 // dent center [Pa]
		b    = 8.0
		s    = 1.0e12
	)
	rho := a0 + a1*(p-pRef) - b*(p-p0)*(p-p0)/s
	rho += 0.001 * (T - 273.15)
	// clip rather than abs() so slope signs survive
	if rho < 1.0 {
		rho = 1.0
	}
	return rho, nil
}

// Enthalpy is weakly varying and plausible in magnitude.
func (d *Dented) Enthalpy(T, p float64) (float64, error) {
	return 1.0e3*T + 5.0e-4*p, nil
}

// PhaseSplit uses the reference saturation state but injects a latent heat
// of only 100 J/kg, violating the Clapeyron relation.
func (d *Dented) PhaseSplit(T float64) (PhaseSplit, error) {
	ref, err := d.ref.PhaseSplit(T)
	if err != nil {
		return PhaseSplit{}, err
	}
	hl := 1.0e3 * T
	return PhaseSplit{
		PSat:   ref.PSat,
		Liquid: PhaseProps{Rho: ref.Liquid.Rho, H: hl},
		Vapor:  PhaseProps{Rho: ref.Vapor.Rho, H: hl + 100.0},
	}, nil
}

// SpeedOfSound is not implemented.
func (d *Dented) SpeedOfSound(T, p float64) (float64, error) {
	return 0, ErrNotSupported
}

// #endregion properties
