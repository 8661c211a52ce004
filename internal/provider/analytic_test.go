package provider

import (
	"errors"
	"math"
	"testing"
)

func newCO2(t *testing.T) *Analytic {
	t.Helper()
	a, err := NewAnalytic("CO2")
	if err != nil {
		t.Fatalf("NewAnalytic: %v", err)
	}
	return a
}

func TestNewAnalyticUnknownFluid(t *testing.T) {
	if _, err := NewAnalytic("H2O"); err == nil {
		t.Fatal("expected error for unsupported fluid")
	}
}

func TestAnalyticCriticalTemperature(t *testing.T) {
	a := newCO2(t)
	if got := a.CriticalTemperature(); got != 304.13 {
		t.Fatalf("expected Tc 304.13, got %f", got)
	}
}

func TestSaturationCurveHitsAnchors(t *testing.T) {
	a := newCO2(t)

	// The two-point fit must pass (asymptotically) through the triple and
	// critical anchors.
	pt, err := a.SaturationPressure(216.592 + 1e-6)
	if err != nil {
		t.Fatalf("SaturationPressure near triple: %v", err)
	}
	if rel := math.Abs(pt-0.51795e6) / 0.51795e6; rel > 1e-3 {
		t.Fatalf("triple anchor off by %.2e", rel)
	}

	pc, err := a.SaturationPressure(304.13 - 1e-6)
	if err != nil {
		t.Fatalf("SaturationPressure near critical: %v", err)
	}
	if rel := math.Abs(pc-7.3773e6) / 7.3773e6; rel > 1e-3 {
		t.Fatalf("critical anchor off by %.2e", rel)
	}
}

func TestSaturationCurveMonotonic(t *testing.T) {
	a := newCO2(t)
	prev := 0.0
	for T := 220.0; T < 300.0; T += 10.0 {
		p, err := a.SaturationPressure(T)
		if err != nil {
			t.Fatalf("SaturationPressure(%f): %v", T, err)
		}
		if p <= prev {
			t.Fatalf("p_sat not increasing at T=%f: %f <= %f", T, p, prev)
		}
		prev = p
	}
}

func TestSaturationOutsideRange(t *testing.T) {
	a := newCO2(t)
	if _, err := a.SaturationPressure(400.0); err == nil {
		t.Fatal("expected domain error above Tc")
	}
	var derr *DomainError
	_, err := a.SaturationPressure(100.0)
	if !errors.As(err, &derr) {
		t.Fatalf("expected DomainError below triple point, got %v", err)
	}
}

func TestDensityBranches(t *testing.T) {
	a := newCO2(t)

	// Vapor at low pressure
	rhoV, err := a.Density(260.0, 1e5)
	if err != nil {
		t.Fatalf("vapor density: %v", err)
	}
	if rhoV <= 0 || rhoV > 10 {
		t.Fatalf("implausible vapor density %f", rhoV)
	}

	// Liquid well above p_sat (p_sat(260) ~ 2.4 MPa)
	rhoL, err := a.Density(260.0, 6e6)
	if err != nil {
		t.Fatalf("liquid density: %v", err)
	}
	if rhoL < 1000 {
		t.Fatalf("expected liquid-like density, got %f", rhoL)
	}

	// Two-phase band raises a DomainError
	ps, _ := a.SaturationPressure(260.0)
	var derr *DomainError
	if _, err := a.Density(260.0, ps); !errors.As(err, &derr) {
		t.Fatalf("expected DomainError at p_sat, got %v", err)
	}
}

func TestDensityMonotonicInPressure(t *testing.T) {
	a := newCO2(t)
	prev := 0.0
	for p := 1e5; p < 2.0e6; p += 1e5 {
		rho, err := a.Density(260.0, p)
		if err != nil {
			t.Fatalf("Density(260, %g): %v", p, err)
		}
		if rho <= prev {
			t.Fatalf("density not increasing at p=%g", p)
		}
		prev = rho
	}
}

func TestPhaseSplitLatentHeat(t *testing.T) {
	a := newCO2(t)
	split, err := a.PhaseSplit(260.0)
	if err != nil {
		t.Fatalf("PhaseSplit: %v", err)
	}
	dh := split.Vapor.H - split.Liquid.H
	if dh <= 0 {
		t.Fatalf("expected positive latent heat, got %f", dh)
	}
	if split.Liquid.Rho <= split.Vapor.Rho {
		t.Fatalf("liquid density %f not above vapor %f", split.Liquid.Rho, split.Vapor.Rho)
	}
	if split.PSat <= 0 {
		t.Fatalf("non-positive p_sat %f", split.PSat)
	}
}

func TestSpeedOfSoundMagnitude(t *testing.T) {
	a := newCO2(t)
	c, err := a.SpeedOfSound(280.0, 1e5)
	if err != nil {
		t.Fatalf("SpeedOfSound: %v", err)
	}
	// gas-phase CO2 is in the low hundreds of m/s
	if c < 150 || c > 400 {
		t.Fatalf("implausible speed of sound %f", c)
	}
}
