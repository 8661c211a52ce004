package provider

import "fmt"

// #region capabilities
// Capabilities declares which property methods a provider implements.
// Computed once per provider and immutable for its lifetime; checks consult
// it before invoking any optional method.
type Capabilities struct {
	Density      bool `json:"density"`
	Enthalpy     bool `json:"enthalpy"`
	PhaseSplit   bool `json:"phase_split"`
	SpeedOfSound bool `json:"speed_of_sound"`
}

// #endregion capabilities

// #region phase-split
// PhaseProps holds the single-phase properties on one side of a saturation line.
type PhaseProps struct {
	Rho float64 `json:"rho"` // density [kg/m^3]
	H   float64 `json:"h"`   // specific enthalpy [J/kg]
}

// PhaseSplit is a vapor-liquid equilibrium split at a saturation temperature.
type PhaseSplit struct {
	PSat   float64    `json:"p_sat"` // saturation pressure [Pa]
	Liquid PhaseProps `json:"liquid"`
	Vapor  PhaseProps `json:"vapor"`
}

// #endregion phase-split

// #region provider-interface
// Provider is a read-only source of thermodynamic properties for a pure fluid.
// Density is required; the other methods are optional and gated by
// Capabilities. Inputs are SI (K, Pa). Implementations must be safe for
// concurrent read access.
type Provider interface {
	Name() string
	Fluid() string
	Capabilities() Capabilities

	Density(T, p float64) (float64, error)
	Enthalpy(T, p float64) (float64, error)
	PhaseSplit(T float64) (PhaseSplit, error)
	SpeedOfSound(T, p float64) (float64, error)
}

// Reference is the trusted baseline provider. It additionally exposes the
// saturation-pressure curve and the critical temperature, which the checks
// use for Clapeyron left-hand sides and critical-band filtering.
type Reference interface {
	Provider
	SaturationPressure(T float64) (float64, error)
	CriticalTemperature() float64
}

// #endregion provider-interface

// #region errors
// DomainError reports that a provider cannot evaluate at a requested state
// point, e.g. inside the two-phase region where single phase was assumed.
type DomainError struct {
	Fluid  string
	T      float64
	P      float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s at T=%.4g K p=%.4g Pa: %s", e.Fluid, e.T, e.P, e.Reason)
}

// ErrNotSupported is returned by optional methods a provider does not
// implement. Callers are expected to consult Capabilities first, so seeing
// this error indicates a caller bug rather than a check failure.
var ErrNotSupported = fmt.Errorf("property method not supported")

// #endregion errors
