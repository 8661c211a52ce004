// Package remote adapts a gRPC property service into a local provider, so
// out-of-process surrogates can run through the same checks as native ones.
package remote

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	pb "github.com/danielpatrickdp/thermobench/go-engine/gen/thermopb"
	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
)

// the wire messages predate the protobuf opaque API; grpc adapts them
var _ protoadapt.MessageV1 = (*pb.PropertyRequest)(nil)

// #region client-struct
// Client wraps the gRPC connection to a remote property service and
// implements provider.Provider on top of it. Call Handshake before use to
// fetch the remote's identity and capability descriptor.
type Client struct {
	conn    *grpc.ClientConn
	svc     pb.PropertyServiceClient
	timeout time.Duration

	name  string
	fluid string
	caps  provider.Capabilities
}

// #endregion client-struct

// #region constructor
// NewClient connects to a remote property service.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		svc:     pb.NewPropertyServiceClient(conn),
		timeout: 10 * time.Second,
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PropertyServiceClient) *Client {
	return &Client{svc: svc, timeout: 10 * time.Second}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region handshake
// Handshake fetches the remote's name, fluid, and capability descriptor.
func (c *Client) Handshake(ctx context.Context) error {
	resp, err := c.svc.Capabilities(ctx, &pb.CapabilitiesRequest{})
	if err != nil {
		return fmt.Errorf("capabilities rpc: %w", err)
	}
	c.name = resp.Name
	c.fluid = resp.Fluid
	c.caps = provider.Capabilities{
		Density:      resp.Density,
		Enthalpy:     resp.Enthalpy,
		PhaseSplit:   resp.PhaseSplit,
		SpeedOfSound: resp.SpeedOfSound,
	}
	return nil
}

// Name identifies the remote provider; empty before Handshake.
func (c *Client) Name() string { return c.name }

// Fluid returns the remote's fluid symbol; empty before Handshake.
func (c *Client) Fluid() string { return c.fluid }

// Capabilities returns the descriptor fetched by Handshake.
func (c *Client) Capabilities() provider.Capabilities { return c.caps }

// #endregion handshake

// #region properties
// Density queries the remote density at (T, p).
func (c *Client) Density(T, p float64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.svc.Density(ctx, &pb.PropertyRequest{TemperatureK: T, PressurePa: p})
	if err != nil {
		return 0, c.mapError("density", T, p, err)
	}
	return resp.Value, nil
}

// Enthalpy queries the remote specific enthalpy at (T, p).
func (c *Client) Enthalpy(T, p float64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.svc.Enthalpy(ctx, &pb.PropertyRequest{TemperatureK: T, PressurePa: p})
	if err != nil {
		return 0, c.mapError("enthalpy", T, p, err)
	}
	return resp.Value, nil
}

// PhaseSplit queries the remote saturation state at T.
func (c *Client) PhaseSplit(T float64) (provider.PhaseSplit, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.svc.PhaseSplit(ctx, &pb.PhaseSplitRequest{TemperatureK: T})
	if err != nil {
		return provider.PhaseSplit{}, c.mapError("phase split", T, 0, err)
	}
	if resp.Liquid == nil || resp.Vapor == nil {
		return provider.PhaseSplit{}, fmt.Errorf("phase split rpc: incomplete response at T=%g", T)
	}
	return provider.PhaseSplit{
		PSat:   resp.PsatPa,
		Liquid: provider.PhaseProps{Rho: resp.Liquid.Rho, H: resp.Liquid.H},
		Vapor:  provider.PhaseProps{Rho: resp.Vapor.Rho, H: resp.Vapor.H},
	}, nil
}

// SpeedOfSound queries the remote speed of sound at (T, p).
func (c *Client) SpeedOfSound(T, p float64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.svc.SpeedOfSound(ctx, &pb.PropertyRequest{TemperatureK: T, PressurePa: p})
	if err != nil {
		return 0, c.mapError("speed of sound", T, p, err)
	}
	return resp.Value, nil
}

// #endregion properties

// #region error-mapping
// mapError translates gRPC status codes back into the provider error
// vocabulary: OutOfRange becomes a DomainError, Unimplemented becomes
// ErrNotSupported, everything else stays a wrapped transport error.
func (c *Client) mapError(op string, T, p float64, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%s rpc: %w", op, err)
	}
	switch st.Code() {
	case codes.OutOfRange:
		return &provider.DomainError{Fluid: c.fluid, T: T, P: p, Reason: st.Message()}
	case codes.Unimplemented:
		return provider.ErrNotSupported
	default:
		return fmt.Errorf("%s rpc: %w", op, err)
	}
}

// #endregion error-mapping
