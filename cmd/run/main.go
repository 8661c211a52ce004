package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/check"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/grid"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/guardrail"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/remote"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/score"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/store"
)

// relative pressure margin kept clear of the saturation line when trimming
// the grid to single-phase points
const singlePhaseMargin = 0.05

// #region main
func main() {
	fluid := flag.String("fluid", envOr("THERMOBENCH_FLUID", "CO2"), "fluid symbol (CO2, N2)")
	surrogate := flag.String("surrogate", "analytic", "surrogate under test: analytic, dented, density-only, remote")
	remoteAddr := flag.String("remote", envOr("THERMOBENCH_REMOTE", "localhost:50061"), "property service address for --surrogate remote")
	gridSpec := flag.String("grid", "", "grid spec like T=230:300:10,p=1e5:5e6:2.5e5 (default per fluid)")
	satTemps := flag.String("sat-temps", "", "comma-separated saturation temperatures [K] (default per fluid)")
	tolMono := flag.Float64("tol-monotonic", 1e-6, "slope tolerance for C1/C2")
	tolClap := flag.Float64("tol-clapeyron", 0.1, "median relative-error tolerance for C3")
	tolSound := flag.Float64("tol-sound", 0.2, "median relative-error tolerance for C4")
	pRef := flag.Float64("p-ref", 1e5, "reference pressure for C4 [Pa]")
	band := guardrail.DefaultCriticalBand()
	criticalGuard := flag.Bool("critical-guard", band.Enabled, "drop temperatures near the critical point before checking")
	guardWidth := flag.Float64("guard-width", band.HalfWidth, "half-width of the critical band [K]")
	randomGrid := flag.Int("random-grid", 0, "subsample to N temperatures and N pressures per isotherm (0 = full grid)")
	seed := flag.Int64("seed", 42, "seed for grid subsampling")
	dbPath := flag.String("db", envOr("THERMOBENCH_DB", ""), "SQLite path to record the run (empty = no persistence)")
	jsonOut := flag.Bool("json", false, "output the full summary as JSON instead of a table")
	flag.Parse()

	ref, err := provider.NewAnalytic(*fluid)
	if err != nil {
		log.Fatalf("reference: %v", err)
	}
	cached := provider.Cache(ref)

	sur, cleanup, err := buildSurrogate(*surrogate, *remoteAddr, cached)
	if err != nil {
		log.Fatalf("surrogate: %v", err)
	}
	defer cleanup()

	g, err := buildGrid(*gridSpec, *satTemps, *fluid)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	if *criticalGuard {
		g = g.WithoutCriticalBand(cached.CriticalTemperature(), *guardWidth)
	}
	g = g.FilterSinglePhase(cached.SaturationPressure, singlePhaseMargin)
	if *randomGrid > 0 {
		g = g.RandomSubset(*seed, *randomGrid, *randomGrid)
	}

	cfg := check.DefaultConfig()
	cfg.TolMonotonic = *tolMono
	cfg.TolClapeyron = *tolClap
	cfg.TolSound = *tolSound
	cfg.PRef = *pRef

	results, err := check.New(sur, cached, cfg).Run(context.Background(), g)
	if err != nil {
		log.Fatalf("run checks: %v", err)
	}

	sum := score.Aggregate(score.Meta{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Fluid:     *fluid,
		Surrogate: sur.Name(),
		GridSpec:  g.Spec,
		Tol:       score.Tolerances{Monotonic: *tolMono, Clapeyron: *tolClap, Sound: *tolSound},
	}, results)

	if *dbPath != "" {
		st, err := store.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer st.Close()
		if err := st.SaveRun(sum); err != nil {
			log.Fatalf("save run: %v", err)
		}
	}

	if *jsonOut {
		if err := printJSON(sum); err != nil {
			log.Fatalf("encode summary: %v", err)
		}
	} else {
		printTable(sum, results)
	}

	for _, res := range results {
		if res.Supported && res.Passed != nil && !*res.Passed {
			os.Exit(1)
		}
	}
}

// #endregion main

// #region surrogate
func buildSurrogate(kind, addr string, ref provider.Reference) (provider.Provider, func(), error) {
	noop := func() {}
	switch kind {
	case "analytic":
		return ref, noop, nil
	case "dented":
		return provider.NewDented(ref), noop, nil
	case "density-only":
		return provider.DensityOnly(ref), noop, nil
	case "remote":
		client, err := remote.NewClient(addr)
		if err != nil {
			return nil, noop, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Handshake(ctx); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("handshake with %s: %w", addr, err)
		}
		if client.Fluid() != ref.Fluid() {
			client.Close()
			return nil, noop, fmt.Errorf("remote serves %s, run configured for %s", client.Fluid(), ref.Fluid())
		}
		return client, func() { client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown surrogate %q (want analytic, dented, density-only, remote)", kind)
	}
}

// #endregion surrogate

// #region grid-setup
func buildGrid(spec, satCSV, fluid string) (grid.Grid, error) {
	if spec == "" {
		spec = grid.DefaultSpec(fluid)
		if spec == "" {
			return grid.Grid{}, fmt.Errorf("no default grid for fluid %q, pass --grid", fluid)
		}
	}
	g, err := grid.Parse(spec)
	if err != nil {
		return grid.Grid{}, err
	}

	temps := grid.DefaultSatTemps(fluid)
	if satCSV != "" {
		temps, err = parseTemps(satCSV)
		if err != nil {
			return grid.Grid{}, fmt.Errorf("sat temps: %w", err)
		}
	}
	return g.WithSatTemps(temps), nil
}

func parseTemps(csv string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(csv, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// #endregion grid-setup

// #region output
func printJSON(sum score.Summary) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}

func printTable(sum score.Summary, results []check.Result) {
	fmt.Printf("Run %s  %s / %s\n", shortID(sum.RunID), sum.Fluid, sum.Surrogate)
	fmt.Printf("Grid: %s\n\n", sum.GridSpec)

	fmt.Printf("%-20s  %-9s  %-6s  %-5s  %12s  %s\n",
		"Check", "Supported", "Passed", "Sev", "Metric", "Note")
	fmt.Printf("%-20s  %-9s  %-6s  %-5s  %12s  %s\n",
		"--------------------", "---------", "------", "-----", "------------", "--------------------")

	for _, res := range results {
		passed := "—"
		if res.Passed != nil {
			passed = fmt.Sprintf("%t", *res.Passed)
		}
		metric := "—"
		if res.Metric != nil {
			metric = fmt.Sprintf("%.4g", *res.Metric)
		}
		note := res.Note
		if res.NearSpinodal {
			note = strings.TrimSpace("near-spinodal " + note)
		}
		fmt.Printf("%-20s  %-9t  %-6s  %-5s  %12s  %s\n",
			string(res.ID), res.Supported, passed, string(res.Severity), metric, note)
	}

	fmt.Println()
	fmt.Printf("Core (C1-C3): %s\n", ratioStr(sum.CoreRatio))
	fmt.Printf("Plus (C4):    %s\n", ratioStr(sum.PlusRatio))
	if sum.Composite != nil {
		fmt.Printf("Composite:    %.1f / 100\n", *sum.Composite)
	} else {
		fmt.Println("Composite:    — (no supported checks)")
	}
}

func ratioStr(r *float64) string {
	if r == nil {
		return "— (no supported checks)"
	}
	return fmt.Sprintf("%.0f%%", 100**r)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output

// #region env
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env
