package score

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/check"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/guardrail"
)

func supported(id check.ID, passed bool) check.Result {
	p := passed
	return check.Result{
		ID:        id,
		Supported: true,
		Passed:    &p,
		Severity:  guardrail.SeverityFor(passed, false),
	}
}

func unsupported(id check.ID) check.Result {
	return check.Result{ID: id, Severity: guardrail.SeverityInfo, Note: "capability absent"}
}

func testMeta() Meta {
	return Meta{
		RunID:     "run-1",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Fluid:     "CO2",
		Surrogate: "analytic",
		GridSpec:  "T=230:290:30,P=1e4:5e4:1e4",
		Tol:       Tolerances{Monotonic: 1e-6, Clapeyron: 0.1, Sound: 0.2},
	}
}

func TestAggregateAllPass(t *testing.T) {
	s := Aggregate(testMeta(), []check.Result{
		supported(check.C1Monotonic, true),
		supported(check.C2Compressibility, true),
		supported(check.C3Clapeyron, true),
		supported(check.C4SpeedOfSound, true),
	})

	if s.CoreRatio == nil || *s.CoreRatio != 1.0 {
		t.Fatalf("expected core ratio 1, got %v", s.CoreRatio)
	}
	if s.PlusRatio == nil || *s.PlusRatio != 1.0 {
		t.Fatalf("expected plus ratio 1, got %v", s.PlusRatio)
	}
	if s.Composite == nil || *s.Composite != 100.0 {
		t.Fatalf("expected composite 100, got %v", s.Composite)
	}
	if len(s.Checks) != 4 {
		t.Fatalf("expected 4 checks in the summary, got %d", len(s.Checks))
	}
}

func TestAggregatePartialFailure(t *testing.T) {
	s := Aggregate(testMeta(), []check.Result{
		supported(check.C1Monotonic, false),
		supported(check.C2Compressibility, false),
		supported(check.C3Clapeyron, false),
		supported(check.C4SpeedOfSound, true),
	})

	if *s.CoreRatio != 0.0 {
		t.Fatalf("expected core ratio 0, got %g", *s.CoreRatio)
	}
	if *s.PlusRatio != 1.0 {
		t.Fatalf("expected plus ratio 1, got %g", *s.PlusRatio)
	}
	if *s.Composite != 25.0 {
		t.Fatalf("expected composite 25, got %g", *s.Composite)
	}
}

func TestAggregateUnsupportedExcluded(t *testing.T) {
	// density-only surrogate: C3/C4 never count against the score
	s := Aggregate(testMeta(), []check.Result{
		supported(check.C1Monotonic, true),
		supported(check.C2Compressibility, true),
		unsupported(check.C3Clapeyron),
		unsupported(check.C4SpeedOfSound),
	})

	if *s.CoreRatio != 1.0 {
		t.Fatalf("core ratio must ignore unsupported checks, got %g", *s.CoreRatio)
	}
	if s.PlusRatio != nil {
		t.Fatalf("empty plus group must yield nil ratio, got %g", *s.PlusRatio)
	}
	if *s.Composite != 100.0 {
		t.Fatalf("expected composite 100 over the supported pair, got %g", *s.Composite)
	}
}

func TestAggregateNothingSupported(t *testing.T) {
	s := Aggregate(testMeta(), []check.Result{
		unsupported(check.C1Monotonic),
		unsupported(check.C2Compressibility),
		unsupported(check.C3Clapeyron),
		unsupported(check.C4SpeedOfSound),
	})

	if s.CoreRatio != nil || s.PlusRatio != nil || s.Composite != nil {
		t.Fatal("a surrogate supporting nothing gets nil ratios, not zeros")
	}
}

func TestSummaryRoundTripsThroughJSON(t *testing.T) {
	s := Aggregate(testMeta(), []check.Result{
		supported(check.C1Monotonic, true),
		unsupported(check.C4SpeedOfSound),
	})

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Summary
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.SchemaVersion != SchemaVersion {
		t.Fatalf("schema version lost: %q", back.SchemaVersion)
	}
	if back.PlusRatio != nil {
		t.Fatal("nil ratio must survive the round trip as null")
	}
	if back.Checks["C4_speed_of_sound"].Passed != nil {
		t.Fatal("unsupported check must keep a null passed field")
	}
	if *back.Composite != *s.Composite {
		t.Fatalf("composite drifted: %g vs %g", *back.Composite, *s.Composite)
	}
}
