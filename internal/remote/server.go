package remote

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/thermobench/go-engine/gen/thermopb"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
)

// #region server
// PropertyServer exposes a local provider over gRPC. The inverse of Client:
// provider errors are mapped onto status codes that mapError can turn back
// into DomainError and ErrNotSupported on the other side.
type PropertyServer struct {
	pb.UnimplementedPropertyServiceServer
	prov provider.Provider
}

// NewPropertyServer wraps a provider for serving.
func NewPropertyServer(p provider.Provider) *PropertyServer {
	return &PropertyServer{prov: p}
}

// #endregion server

// #region handlers
// Capabilities reports the wrapped provider's identity and descriptor.
func (s *PropertyServer) Capabilities(ctx context.Context, _ *pb.CapabilitiesRequest) (*pb.CapabilitiesResponse, error) {
	caps := s.prov.Capabilities()
	return &pb.CapabilitiesResponse{
		Name:         s.prov.Name(),
		Fluid:        s.prov.Fluid(),
		Density:      caps.Density,
		Enthalpy:     caps.Enthalpy,
		PhaseSplit:   caps.PhaseSplit,
		SpeedOfSound: caps.SpeedOfSound,
	}, nil
}

// Density evaluates density at the requested state point.
func (s *PropertyServer) Density(ctx context.Context, req *pb.PropertyRequest) (*pb.PropertyResponse, error) {
	v, err := s.prov.Density(req.TemperatureK, req.PressurePa)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PropertyResponse{Value: v}, nil
}

// Enthalpy evaluates specific enthalpy at the requested state point.
func (s *PropertyServer) Enthalpy(ctx context.Context, req *pb.PropertyRequest) (*pb.PropertyResponse, error) {
	v, err := s.prov.Enthalpy(req.TemperatureK, req.PressurePa)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PropertyResponse{Value: v}, nil
}

// PhaseSplit evaluates the saturation state at the requested temperature.
func (s *PropertyServer) PhaseSplit(ctx context.Context, req *pb.PhaseSplitRequest) (*pb.PhaseSplitResponse, error) {
	split, err := s.prov.PhaseSplit(req.TemperatureK)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PhaseSplitResponse{
		PsatPa: split.PSat,
		Liquid: &pb.PhaseProps{Rho: split.Liquid.Rho, H: split.Liquid.H},
		Vapor:  &pb.PhaseProps{Rho: split.Vapor.Rho, H: split.Vapor.H},
	}, nil
}

// SpeedOfSound evaluates the speed of sound at the requested state point.
func (s *PropertyServer) SpeedOfSound(ctx context.Context, req *pb.PropertyRequest) (*pb.PropertyResponse, error) {
	v, err := s.prov.SpeedOfSound(req.TemperatureK, req.PressurePa)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PropertyResponse{Value: v}, nil
}

// #endregion handlers

// #region error-mapping
func toStatus(err error) error {
	var de *provider.DomainError
	if errors.As(err, &de) {
		return status.Error(codes.OutOfRange, de.Reason)
	}
	if errors.Is(err, provider.ErrNotSupported) {
		return status.Error(codes.Unimplemented, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// #endregion error-mapping
