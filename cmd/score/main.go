package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/store"
)

// #region main
func main() {
	dbPath := flag.String("db", envOr("THERMOBENCH_DB", ""), "path to the run database")
	runID := flag.String("run", "", "show a single run by ID")
	last := flag.Int("last", 20, "list the N most recent runs")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: score --db path/to/thermobench.db [--run id | --last N] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *runID != "" {
		if err := runDetailMode(st, *runID, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runListMode(st, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region detail-mode
func runDetailMode(st *store.Store, runID string, jsonOut bool) error {
	sum, err := st.GetRun(runID)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(sum)
	}

	fmt.Printf("Run %s  %s / %s\n", sum.RunID, sum.Fluid, sum.Surrogate)
	fmt.Printf("Grid: %s\n", sum.GridSpec)
	fmt.Printf("Time: %s\n\n", sum.CreatedAt.Format("2006-01-02T15:04:05Z"))

	fmt.Printf("%-20s  %-9s  %-6s  %-5s  %12s  %s\n",
		"Check", "Supported", "Passed", "Sev", "Metric", "Note")
	fmt.Printf("%-20s  %-9s  %-6s  %-5s  %12s  %s\n",
		"--------------------", "---------", "------", "-----", "------------", "--------------------")
	for _, id := range []string{"C1_monotonic", "C2_compressibility", "C3_clapeyron", "C4_speed_of_sound"} {
		res, ok := sum.Checks[id]
		if !ok {
			continue
		}
		passed := "—"
		if res.Passed != nil {
			passed = fmt.Sprintf("%t", *res.Passed)
		}
		metric := "—"
		if res.Metric != nil {
			metric = fmt.Sprintf("%.4g", *res.Metric)
		}
		fmt.Printf("%-20s  %-9t  %-6s  %-5s  %12s  %s\n",
			id, res.Supported, passed, string(res.Severity), metric, res.Note)
	}

	fmt.Println()
	fmt.Printf("Core (C1-C3): %s\n", ratioStr(sum.CoreRatio))
	fmt.Printf("Plus (C4):    %s\n", ratioStr(sum.PlusRatio))
	if sum.Composite != nil {
		fmt.Printf("Composite:    %.1f / 100\n", *sum.Composite)
	} else {
		fmt.Println("Composite:    — (no supported checks)")
	}
	return nil
}

// #endregion detail-mode

// #region list-mode
func runListMode(st *store.Store, last int, jsonOut bool) error {
	heads, err := st.ListRuns(last)
	if err != nil {
		return err
	}
	if len(heads) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}
	if jsonOut {
		return printJSON(heads)
	}

	fmt.Printf("%-10s  %-5s  %-12s  %9s  %s\n", "Run", "Fluid", "Surrogate", "Composite", "Time")
	fmt.Printf("%-10s  %-5s  %-12s  %9s  %s\n", "----------", "-----", "------------", "---------", "--------------------")
	for _, h := range heads {
		composite := "—"
		if h.Composite != nil {
			composite = fmt.Sprintf("%.1f", *h.Composite)
		}
		fmt.Printf("%-10s  %-5s  %-12s  %9s  %s\n",
			shortID(h.RunID), h.Fluid, h.Surrogate, composite, h.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion list-mode

// #region helpers
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
