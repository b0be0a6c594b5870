package health

import (
	"context"
	"net"

	"github.com/sbilibin2017/transaction-service/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported to gRPC health checks besides the overall "" service.
const ServiceName = "transactionservice.TransactionService"

// Server exposes the standard gRPC health protocol for the ledger process.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// NewServer registers the health and reflection services on a fresh gRPC server.
// Both the overall and the ledger service start as SERVING.
func NewServer(opts ...grpc.ServerOption) *Server {
	gs := grpc.NewServer(opts...)
	hs := health.NewServer()

	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{grpc: gs, health: hs}
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	logger.Log.Infow("gRPC health server listening", "addr", lis.Addr().String())
	return s.grpc.Serve(lis)
}

// Stop flips every service to NOT_SERVING and drains in flight RPCs.
// The server is stopped forcibly once ctx is done.
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Log.Warnw("gRPC graceful stop timed out", "error", ctx.Err())
		s.grpc.Stop()
	}
}
