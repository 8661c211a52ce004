package main

import (
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/thermobench/go-engine/gen/thermopb"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/remote"
)

// #region main
func main() {
	addr := flag.String("addr", envOr("THERMOBENCH_ADDR", "localhost:50061"), "listen address")
	fluid := flag.String("fluid", envOr("THERMOBENCH_FLUID", "CO2"), "fluid symbol (CO2, N2)")
	kind := flag.String("provider", "analytic", "provider to serve: analytic, dented, density-only")
	flag.Parse()

	ref, err := provider.NewAnalytic(*fluid)
	if err != nil {
		log.Fatalf("reference: %v", err)
	}

	var prov provider.Provider
	switch *kind {
	case "analytic":
		prov = ref
	case "dented":
		prov = provider.NewDented(ref)
	case "density-only":
		prov = provider.DensityOnly(ref)
	default:
		log.Fatalf("unknown provider %q (want analytic, dented, density-only)", *kind)
	}

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen %s: %v", *addr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterPropertyServiceServer(srv, remote.NewPropertyServer(prov))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		srv.GracefulStop()
	}()

	log.Printf("serving %s (%s) on %s", prov.Name(), prov.Fluid(), *addr)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region env
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env
