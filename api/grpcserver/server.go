package grpcserver

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is reported by the health service alongside the overall ("") status.
const ServiceName = "relay.v1.Relay"

// Server exposes the standard gRPC health checking protocol for platform probes.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

func New(opts ...grpc.ServerOption) *Server {
	s := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return &Server{grpc: s, health: hs}
}

func (s *Server) Serve(lis net.Listener) error { return s.grpc.Serve(lis) }

// Drain flips every service to NOT_SERVING so probes stop routing traffic here.
func (s *Server) Drain() { s.health.Shutdown() }

// Stop drains and then waits for in-flight RPCs.
func (s *Server) Stop() {
	s.Drain()
	s.grpc.GracefulStop()
}

// ForceStop closes every connection without waiting.
func (s *Server) ForceStop() { s.grpc.Stop() }
