package provider

import (
	"errors"
	"testing"
)

func TestDentedNegativeSlopeRegion(t *testing.T) {
	ref := newCO2(t)
	d := NewDented(ref)

	// Past the dent center the density must decrease with pressure.
	lo, err := d.Density(260.0, 2.4e6)
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	hi, err := d.Density(260.0, 2.6e6)
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	if hi >= lo {
		t.Fatalf("expected decreasing density past dent: rho(2.6MPa)=%f rho(2.4MPa)=%f", hi, lo)
	}
}

func TestDentedTinyLatentHeat(t *testing.T) {
	ref := newCO2(t)
	d := NewDented(ref)

	split, err := d.PhaseSplit(260.0)
	if err != nil {
		t.Fatalf("PhaseSplit: %v", err)
	}
	dh := split.Vapor.H - split.Liquid.H
	if dh != 100.0 {
		t.Fatalf("expected fabricated 100 J/kg latent heat, got %f", dh)
	}
}

func TestDentedCapabilities(t *testing.T) {
	ref := newCO2(t)
	caps := NewDented(ref).Capabilities()
	if !caps.Density || !caps.Enthalpy || !caps.PhaseSplit {
		t.Fatalf("expected density/enthalpy/phase_split support, got %+v", caps)
	}
	if caps.SpeedOfSound {
		t.Fatal("dented surrogate must not claim speed_of_sound")
	}
}

func TestRestrictedMasksCapabilities(t *testing.T) {
	ref := newCO2(t)
	r := DensityOnly(ref)

	caps := r.Capabilities()
	if !caps.Density {
		t.Fatal("density must survive the mask")
	}
	if caps.Enthalpy || caps.PhaseSplit || caps.SpeedOfSound {
		t.Fatalf("optional capabilities must be masked, got %+v", caps)
	}

	if _, err := r.Density(260.0, 1e5); err != nil {
		t.Fatalf("density call through mask: %v", err)
	}
	if _, err := r.Enthalpy(260.0, 1e5); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
	if _, err := r.PhaseSplit(260.0); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}

func TestRestrictCannotGrantCapabilities(t *testing.T) {
	ref := newCO2(t)
	d := NewDented(ref) // no speed of sound

	r := Restrict(d, Capabilities{Density: true, SpeedOfSound: true})
	if r.Capabilities().SpeedOfSound {
		t.Fatal("mask must intersect, not grant")
	}
}

// #region counting-ref
// countingRef counts inner lookups to verify the cache is read-through.
type countingRef struct {
	*Analytic
	densityCalls int
	splitCalls   int
	psatCalls    int
}

func (c *countingRef) Density(T, p float64) (float64, error) {
	c.densityCalls++
	return c.Analytic.Density(T, p)
}

func (c *countingRef) PhaseSplit(T float64) (PhaseSplit, error) {
	c.splitCalls++
	return c.Analytic.PhaseSplit(T)
}

func (c *countingRef) SaturationPressure(T float64) (float64, error) {
	c.psatCalls++
	return c.Analytic.SaturationPressure(T)
}

// #endregion counting-ref

func TestCachedMemoizesLookups(t *testing.T) {
	inner := &countingRef{Analytic: newCO2(t)}
	c := Cache(inner)

	for i := 0; i < 5; i++ {
		if _, err := c.Density(260.0, 1e5); err != nil {
			t.Fatalf("Density: %v", err)
		}
		if _, err := c.PhaseSplit(260.0); err != nil {
			t.Fatalf("PhaseSplit: %v", err)
		}
		if _, err := c.SaturationPressure(260.0); err != nil {
			t.Fatalf("SaturationPressure: %v", err)
		}
	}

	if inner.densityCalls != 1 {
		t.Fatalf("expected 1 inner density call, got %d", inner.densityCalls)
	}
	if inner.splitCalls != 1 {
		t.Fatalf("expected 1 inner phase-split call, got %d", inner.splitCalls)
	}
	if inner.psatCalls != 1 {
		t.Fatalf("expected 1 inner p_sat call, got %d", inner.psatCalls)
	}
}

func TestCachedMemoizesDomainErrors(t *testing.T) {
	inner := &countingRef{Analytic: newCO2(t)}
	c := Cache(inner)

	ps, _ := inner.Analytic.SaturationPressure(260.0)
	for i := 0; i < 3; i++ {
		var derr *DomainError
		if _, err := c.Density(260.0, ps); !errors.As(err, &derr) {
			t.Fatalf("expected DomainError, got %v", err)
		}
	}
	if inner.densityCalls != 1 {
		t.Fatalf("expected the domain error to be cached, got %d calls", inner.densityCalls)
	}
}

func TestCachedDistinguishesNearbyPoints(t *testing.T) {
	inner := &countingRef{Analytic: newCO2(t)}
	c := Cache(inner)

	// 1 Pa apart is far beyond the micro-unit rounding; both must miss.
	c.Density(260.0, 1e5)
	c.Density(260.0, 1e5+1.0)
	if inner.densityCalls != 2 {
		t.Fatalf("expected 2 inner calls for distinct points, got %d", inner.densityCalls)
	}
}
