package provider

// #region restricted
// Restricted masks capabilities of an inner provider without touching its
// property math. Used to exercise the unsupported-check paths, e.g. a
// density-only rendition of a full surrogate.
type Restricted struct {
	inner Provider
	caps  Capabilities
}

// Restrict intersects the inner provider's capabilities with mask.
func Restrict(inner Provider, mask Capabilities) *Restricted {
	caps := inner.Capabilities()
	return &Restricted{
		inner: inner,
		caps: Capabilities{
			Density:      caps.Density && mask.Density,
			Enthalpy:     caps.Enthalpy && mask.Enthalpy,
			PhaseSplit:   caps.PhaseSplit && mask.PhaseSplit,
			SpeedOfSound: caps.SpeedOfSound && mask.SpeedOfSound,
		},
	}
}

// DensityOnly masks everything but the required density method.
func DensityOnly(inner Provider) *Restricted {
	return Restrict(inner, Capabilities{Density: true})
}

// Name identifies the provider in summaries and capability tables.
func (r *Restricted) Name() string { return r.inner.Name() + "-restricted" }

// Fluid returns the fluid symbol.
func (r *Restricted) Fluid() string { return r.inner.Fluid() }

// Capabilities returns the masked capability set.
func (r *Restricted) Capabilities() Capabilities { return r.caps }

// #endregion restricted

// #region forwarding
func (r *Restricted) Density(T, p float64) (float64, error) {
	if !r.caps.Density {
		return 0, ErrNotSupported
	}
	return r.inner.Density(T, p)
}

func (r *Restricted) Enthalpy(T, p float64) (float64, error) {
	if !r.caps.Enthalpy {
		return 0, ErrNotSupported
	}
	return r.inner.Enthalpy(T, p)
}

func (r *Restricted) PhaseSplit(T float64) (PhaseSplit, error) {
	if !r.caps.PhaseSplit {
		return PhaseSplit{}, ErrNotSupported
	}
	return r.inner.PhaseSplit(T)
}

func (r *Restricted) SpeedOfSound(T, p float64) (float64, error) {
	if !r.caps.SpeedOfSound {
		return 0, ErrNotSupported
	}
	return r.inner.SpeedOfSound(T, p)
}

// #endregion forwarding
