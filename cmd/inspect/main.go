package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/check"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/remote"
)

// #region main
func main() {
	fluid := flag.String("fluid", envOr("THERMOBENCH_FLUID", "CO2"), "fluid symbol (CO2, N2)")
	surrogate := flag.String("surrogate", "analytic", "provider to describe: analytic, dented, density-only, remote")
	remoteAddr := flag.String("remote", envOr("THERMOBENCH_REMOTE", "localhost:50061"), "property service address for --surrogate remote")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	prov, cleanup, err := buildProvider(*surrogate, *remoteAddr, *fluid)
	if err != nil {
		log.Fatalf("provider: %v", err)
	}
	defer cleanup()

	if *jsonOut {
		if err := printJSON(prov); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}
	printTable(prov)
}

// #endregion main

// #region provider-setup
func buildProvider(kind, addr, fluid string) (provider.Provider, func(), error) {
	noop := func() {}
	ref, err := provider.NewAnalytic(fluid)
	if err != nil {
		return nil, noop, err
	}
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
		return client, func() { client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown provider %q (want analytic, dented, density-only, remote)", kind)
	}
}

// #endregion provider-setup

// #region output
type description struct {
	Name         string                `json:"name"`
	Fluid        string                `json:"fluid"`
	Capabilities provider.Capabilities `json:"capabilities"`
	Checks       []checkRow            `json:"checks"`
}

type checkRow struct {
	ID       string `json:"id"`
	Runnable bool   `json:"runnable"`
	Missing  string `json:"missing_capability,omitempty"`
}

func describe(prov provider.Provider) description {
	caps := prov.Capabilities()
	runnable := check.Runnable(caps)

	d := description{
		Name:         prov.Name(),
		Fluid:        prov.Fluid(),
		Capabilities: caps,
	}
	for _, id := range check.IDs {
		d.Checks = append(d.Checks, checkRow{
			ID:       string(id),
			Runnable: runnable[id],
			Missing:  check.MissingCapability(id, caps),
		})
	}
	return d
}

func printJSON(prov provider.Provider) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(describe(prov))
}

func printTable(prov provider.Provider) {
	d := describe(prov)
	fmt.Printf("Provider: %s (%s)\n", d.Name, d.Fluid)
	fmt.Printf("Capabilities: density=%t enthalpy=%t phase_split=%t speed_of_sound=%t\n\n",
		d.Capabilities.Density, d.Capabilities.Enthalpy, d.Capabilities.PhaseSplit, d.Capabilities.SpeedOfSound)

	fmt.Printf("%-20s  %-8s  %s\n", "Check", "Runnable", "Missing")
	fmt.Printf("%-20s  %-8s  %s\n", "--------------------", "--------", "--------------")
	for _, row := range d.Checks {
		missing := "—"
		if row.Missing != "" {
			missing = row.Missing
		}
		fmt.Printf("%-20s  %-8t  %s\n", row.ID, row.Runnable, missing)
	}
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
