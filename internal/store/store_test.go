package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/check"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/guardrail"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/score"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSummary(runID string, created time.Time) score.Summary {
	passed := true
	metric := 2.3e-5
	ratio := 1.0
	composite := 100.0
	return score.Summary{
		SchemaVersion: score.SchemaVersion,
		RunID:         runID,
		CreatedAt:     created,
		Fluid:         "CO2",
		Surrogate:     "analytic",
		GridSpec:      "T=230:290:30,P=1e4:5e4:1e4",
		Tolerances:    score.Tolerances{Monotonic: 1e-6, Clapeyron: 0.1, Sound: 0.2},
		Checks: map[string]check.Result{
			"C1_monotonic": {
				ID:        check.C1Monotonic,
				Supported: true,
				Passed:    &passed,
				Severity:  guardrail.SeverityInfo,
				Metric:    &metric,
			},
			"C4_speed_of_sound": {
				ID:       check.C4SpeedOfSound,
				Severity: guardrail.SeverityInfo,
				Note:     "surrogate does not expose speed_of_sound",
			},
		},
		CoreRatio: &ratio,
		Composite: &composite,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := tempDB(t)
	now := time.Now().UTC()
	sum := sampleSummary("run-1", now)

	if err := s.SaveRun(sum); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Fluid != "CO2" || got.Surrogate != "analytic" {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.Composite == nil || *got.Composite != 100.0 {
		t.Fatalf("composite lost: %v", got.Composite)
	}
	if len(got.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(got.Checks))
	}

	c1 := got.Checks["C1_monotonic"]
	if c1.Passed == nil || !*c1.Passed || *c1.Metric != 2.3e-5 {
		t.Fatalf("C1 result lost: %+v", c1)
	}
	c4 := got.Checks["C4_speed_of_sound"]
	if c4.Supported || c4.Passed != nil {
		t.Fatalf("unsupported C4 must stay unsupported: %+v", c4)
	}
}

func TestSaveRunNilScores(t *testing.T) {
	s := tempDB(t)
	sum := sampleSummary("run-nil", time.Now().UTC())
	sum.CoreRatio = nil
	sum.PlusRatio = nil
	sum.Composite = nil

	if err := s.SaveRun(sum); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun("run-nil")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Composite != nil || got.CoreRatio != nil {
		t.Fatal("nil scores must round-trip as nil, not zero")
	}

	heads, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if heads[0].Composite != nil {
		t.Fatal("listing must show nil composite for unscored runs")
	}
}

func TestDuplicateRunIDRejected(t *testing.T) {
	s := tempDB(t)
	sum := sampleSummary("run-dup", time.Now().UTC())

	if err := s.SaveRun(sum); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.SaveRun(sum); err == nil {
		t.Fatal("expected primary-key violation on duplicate run ID")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := tempDB(t)
	base := time.Now().UTC()

	for i, id := range []string{"run-a", "run-b", "run-c"} {
		sum := sampleSummary(id, base.Add(time.Duration(i)*time.Second))
		if err := s.SaveRun(sum); err != nil {
			t.Fatalf("SaveRun %s: %v", id, err)
		}
	}

	heads, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(heads) != 2 {
		t.Fatalf("expected limit 2, got %d", len(heads))
	}
	if heads[0].RunID != "run-c" || heads[1].RunID != "run-b" {
		t.Fatalf("expected newest first, got %s, %s", heads[0].RunID, heads[1].RunID)
	}
}

func TestLastRun(t *testing.T) {
	s := tempDB(t)
	base := time.Now().UTC()
	s.SaveRun(sampleSummary("run-old", base))
	s.SaveRun(sampleSummary("run-new", base.Add(time.Second)))

	got, err := s.LastRun()
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	if got.RunID != "run-new" {
		t.Fatalf("expected run-new, got %s", got.RunID)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := tempDB(t)
	if _, err := s.GetRun("nonexistent"); err == nil {
		t.Fatal("expected error for unknown run ID")
	}
}

func TestLastRunEmptyDB(t *testing.T) {
	s := tempDB(t)
	if _, err := s.LastRun(); err == nil {
		t.Fatal("expected error on an empty database")
	}
}

func TestSaveRunOnClosedDB(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s.Close()

	if err := s.SaveRun(sampleSummary("run-x", time.Now().UTC())); err == nil {
		t.Fatal("expected error on closed DB")
	}
}
