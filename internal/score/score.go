// Package score aggregates per-check results into a run summary with group
// pass ratios and a 0-100 composite.
package score

import (
	"time"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/check"
)

// #region schema
// SchemaVersion tags serialized summaries so stored runs stay readable after
// format changes.
const SchemaVersion = "1.0"

// Tolerances records the thresholds a run was judged against.
type Tolerances struct {
	Monotonic float64 `json:"monotonic"`
	Clapeyron float64 `json:"clapeyron"`
	Sound     float64 `json:"sound"`
}

// Meta carries the run identity fields the aggregator copies into the summary.
type Meta struct {
	RunID     string
	CreatedAt time.Time
	Fluid     string
	Surrogate string
	GridSpec  string
	Tol       Tolerances
}

// Summary is the full outcome of one consistency run.
//
// CoreRatio covers C1-C3, PlusRatio covers C4, Composite covers every
// supported check. Each is nil when its group has no supported check; a
// surrogate that supports nothing gets a nil composite, never a zero.
type Summary struct {
	SchemaVersion string                  `json:"schema_version"`
	RunID         string                  `json:"run_id"`
	CreatedAt     time.Time               `json:"created_at"`
	Fluid         string                  `json:"fluid"`
	Surrogate     string                  `json:"surrogate"`
	GridSpec      string                  `json:"grid_spec"`
	Tolerances    Tolerances              `json:"tolerances"`
	Checks        map[string]check.Result `json:"checks"`
	CoreRatio     *float64                `json:"core_ratio"`
	PlusRatio     *float64                `json:"plus_ratio"`
	Composite     *float64                `json:"composite"`
}

// #endregion schema

// #region aggregate
var coreIDs = map[check.ID]bool{
	check.C1Monotonic:       true,
	check.C2Compressibility: true,
	check.C3Clapeyron:       true,
}

// Aggregate folds check results into a summary. Unsupported checks are
// excluded from every ratio rather than counted as failures.
func Aggregate(meta Meta, results []check.Result) Summary {
	s := Summary{
		SchemaVersion: SchemaVersion,
		RunID:         meta.RunID,
		CreatedAt:     meta.CreatedAt,
		Fluid:         meta.Fluid,
		Surrogate:     meta.Surrogate,
		GridSpec:      meta.GridSpec,
		Tolerances:    meta.Tol,
		Checks:        make(map[string]check.Result, len(results)),
	}

	var corePass, coreTotal, plusPass, plusTotal int
	for _, r := range results {
		s.Checks[string(r.ID)] = r
		if !r.Supported {
			continue
		}
		passed := r.Passed != nil && *r.Passed
		if coreIDs[r.ID] {
			coreTotal++
			if passed {
				corePass++
			}
		} else {
			plusTotal++
			if passed {
				plusPass++
			}
		}
	}

	s.CoreRatio = ratio(corePass, coreTotal)
	s.PlusRatio = ratio(plusPass, plusTotal)
	if all := ratio(corePass+plusPass, coreTotal+plusTotal); all != nil {
		composite := 100 * *all
		s.Composite = &composite
	}
	return s
}

// ratio returns nil for an empty group so callers can tell "nothing ran"
// apart from "everything failed".
func ratio(pass, total int) *float64 {
	if total == 0 {
		return nil
	}
	r := float64(pass) / float64(total)
	return &r
}

// #endregion aggregate
