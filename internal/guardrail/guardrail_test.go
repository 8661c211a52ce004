package guardrail

import "testing"

func TestEpsGuardFloor(t *testing.T) {
	if got := EpsGuard(1e-6); got != 1e-5 {
		t.Fatalf("expected 10x tolerance, got %g", got)
	}
	// floor kicks in for very tight tolerances
	if got := EpsGuard(1e-12); got != 1e-9 {
		t.Fatalf("expected 1e-9 floor, got %g", got)
	}
}

func TestNearSpinodalInterval(t *testing.T) {
	tol := 1e-6 // epsGuard = 1e-5

	// halfway into the guard band: flagged
	if !NearSpinodal([]float64{1.0, EpsGuard(tol) / 2}, tol) {
		t.Fatal("value at epsGuard/2 must flag near-spinodal")
	}
	// exactly zero is inside the closed-left interval
	if !NearSpinodal([]float64{0.0}, tol) {
		t.Fatal("zero slope must flag near-spinodal")
	}
	// at the threshold: not flagged
	if NearSpinodal([]float64{EpsGuard(tol)}, tol) {
		t.Fatal("value at epsGuard must not flag")
	}
	// negative values are failures, not fragility
	if NearSpinodal([]float64{-1e-8}, tol) {
		t.Fatal("negative value must not flag near-spinodal")
	}
	if NearSpinodal(nil, tol) {
		t.Fatal("empty input must not flag")
	}
}

func TestSeverityDerivation(t *testing.T) {
	if got := SeverityFor(false, false); got != SeverityFail {
		t.Fatalf("expected fail, got %s", got)
	}
	// guardrail never rescues a failure
	if got := SeverityFor(false, true); got != SeverityFail {
		t.Fatalf("expected fail to dominate, got %s", got)
	}
	if got := SeverityFor(true, true); got != SeverityWarn {
		t.Fatalf("expected warn, got %s", got)
	}
	if got := SeverityFor(true, false); got != SeverityInfo {
		t.Fatalf("expected info, got %s", got)
	}
}

func TestDefaultCriticalBand(t *testing.T) {
	band := DefaultCriticalBand()
	if band.Enabled {
		t.Fatal("critical-band avoidance must be opt-in")
	}
	if band.HalfWidth != 5.0 {
		t.Fatalf("expected 5 K default half-width, got %f", band.HalfWidth)
	}
}
