package provider

import (
	"fmt"
	"math"
)

// universal gas constant [J/(mol K)]
const gasConstant = 8.314462618

// #region fluid-spec
// fluidSpec holds the correlation constants for one supported pure fluid.
type fluidSpec struct {
	symbol    string
	molarMass float64 // [kg/mol]
	tCrit     float64 // [K]
	pCrit     float64 // [Pa]
	tTriple   float64 // [K]
	pTriple   float64 // [Pa]
	rhoLiq    float64 // nominal saturated-liquid density [kg/m^3]
	gammaGas  float64 // heat capacity ratio for the gas phase
	cpGas     float64 // gas-phase specific heat [J/(kg K)]
}

var fluids = map[string]fluidSpec{
	"CO2": {
		symbol:    "CO2",
		molarMass: 0.0440098,
		tCrit:     304.13,
		pCrit:     7.3773e6,
		tTriple:   216.592,
		pTriple:   0.51795e6,
		rhoLiq:    1100.0,
		gammaGas:  1.30,
		cpGas:     846.0,
	},
	"N2": {
		symbol:    "N2",
		molarMass: 0.0280134,
		tCrit:     126.192,
		pCrit:     3.3958e6,
		tTriple:   63.151,
		pTriple:   12.52e3,
		rhoLiq:    807.0,
		gammaGas:  1.40,
		cpGas:     1040.0,
	},
}

// #endregion fluid-spec

// #region analytic
// Analytic is the built-in trusted reference. It uses a Clausius-Clapeyron
// saturation curve anchored at the triple and critical points, an ideal-gas
// vapor phase, a weakly compressible liquid phase, and a constant latent
// heat, so its own properties satisfy the consistency identities the checks
// test for. It stands in for an external property library, which has no Go
// binding.
type Analytic struct {
	spec   fluidSpec
	latent float64 // [J/kg], derived from the two-point saturation fit
}

// twoPhaseMargin is the relative pressure band around p_sat treated as
// two-phase for single-phase queries.
const twoPhaseMargin = 0.02

// liquid compressibility used to keep drho/dp positive in the liquid branch
const liquidKappa = 1e-9

// NewAnalytic builds the reference for a supported fluid (CO2, N2).
func NewAnalytic(fluid string) (*Analytic, error) {
	spec, ok := fluids[fluid]
	if !ok {
		return nil, fmt.Errorf("unknown fluid %q (supported: CO2, N2)", fluid)
	}
	// Fit L so the saturation curve passes through both the triple and the
	// critical point: ln(pc/pt) = (L M / R) (1/Tt - 1/Tc).
	latent := (gasConstant / spec.molarMass) *
		math.Log(spec.pCrit/spec.pTriple) / (1.0/spec.tTriple - 1.0/spec.tCrit)
	return &Analytic{spec: spec, latent: latent}, nil
}

// Name identifies the provider in summaries and capability tables.
func (a *Analytic) Name() string { return "analytic" }

// Fluid returns the fluid symbol.
func (a *Analytic) Fluid() string { return a.spec.symbol }

// Capabilities reports full support.
func (a *Analytic) Capabilities() Capabilities {
	return Capabilities{Density: true, Enthalpy: true, PhaseSplit: true, SpeedOfSound: true}
}

// #endregion analytic

// #region saturation
// SaturationPressure evaluates the Clausius-Clapeyron curve at T.
func (a *Analytic) SaturationPressure(T float64) (float64, error) {
	if T <= a.spec.tTriple || T >= a.spec.tCrit {
		return 0, &DomainError{
			Fluid: a.spec.symbol, T: T,
			Reason: fmt.Sprintf("no saturation curve outside (%.3f, %.3f) K", a.spec.tTriple, a.spec.tCrit),
		}
	}
	exponent := -(a.latent * a.spec.molarMass / gasConstant) * (1.0/T - 1.0/a.spec.tCrit)
	return a.spec.pCrit * math.Exp(exponent), nil
}

// CriticalTemperature returns Tc for the fluid.
func (a *Analytic) CriticalTemperature() float64 { return a.spec.tCrit }

// #endregion saturation

// #region properties
// Density returns the single-phase density at (T, p). Points inside the
// two-phase band around p_sat produce a DomainError.
func (a *Analytic) Density(T, p float64) (float64, error) {
	if T <= 0 || p <= 0 {
		return 0, &DomainError{Fluid: a.spec.symbol, T: T, P: p, Reason: "non-physical state point"}
	}
	if T >= a.spec.tCrit {
		return a.gasDensity(T, p), nil
	}
	ps, err := a.SaturationPressure(T)
	if err != nil {
		return 0, err
	}
	if math.Abs(p-ps) < twoPhaseMargin*ps {
		return 0, &DomainError{Fluid: a.spec.symbol, T: T, P: p, Reason: "two-phase region"}
	}
	if p > ps {
		return a.spec.rhoLiq * (1.0 + liquidKappa*(p-ps)), nil
	}
	return a.gasDensity(T, p), nil
}

// Enthalpy returns the specific enthalpy at (T, p). The liquid branch is
// offset by the latent heat so the saturation jump equals L.
func (a *Analytic) Enthalpy(T, p float64) (float64, error) {
	if T >= a.spec.tCrit {
		return a.spec.cpGas * T, nil
	}
	ps, err := a.SaturationPressure(T)
	if err != nil {
		return 0, err
	}
	if math.Abs(p-ps) < twoPhaseMargin*ps {
		return 0, &DomainError{Fluid: a.spec.symbol, T: T, P: p, Reason: "two-phase region"}
	}
	if p > ps {
		return a.spec.cpGas*T - a.latent, nil
	}
	return a.spec.cpGas * T, nil
}

// PhaseSplit returns the VLE split at T.
func (a *Analytic) PhaseSplit(T float64) (PhaseSplit, error) {
	ps, err := a.SaturationPressure(T)
	if err != nil {
		return PhaseSplit{}, err
	}
	hv := a.spec.cpGas * T
	return PhaseSplit{
		PSat:   ps,
		Liquid: PhaseProps{Rho: a.spec.rhoLiq, H: hv - a.latent},
		Vapor:  PhaseProps{Rho: a.gasDensity(T, ps), H: hv},
	}, nil
}

// SpeedOfSound returns the gas-phase ideal speed of sound. The model has no
// liquid-phase acoustics; C4 samples at a low reference pressure where the
// fluid is gaseous.
func (a *Analytic) SpeedOfSound(T, p float64) (float64, error) {
	if T <= 0 {
		return 0, &DomainError{Fluid: a.spec.symbol, T: T, P: p, Reason: "non-physical state point"}
	}
	return math.Sqrt(a.spec.gammaGas * gasConstant * T / a.spec.molarMass), nil
}

func (a *Analytic) gasDensity(T, p float64) float64 {
	return p * a.spec.molarMass / (gasConstant * T)
}

// #endregion properties
