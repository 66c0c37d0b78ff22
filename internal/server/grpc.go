package server

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logger"
)

// grpcServer exposes the standard gRPC health checking protocol
// (grpc.health.v1.Health), so orchestrators that probe over gRPC can watch
// the instance without going through the HTTP listener.
type grpcServer struct {
	server        *grpc.Server
	healthService *health.Server
	address       string

	logger *logger.Logger
}

func newGRPCServer(cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	healthService := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthService)

	return &grpcServer{
		server:        srv,
		healthService: healthService,
		address:       cfg.GRPCAddress,
		logger:        logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Msgf("gRPC server Listen: %v", err)
		return
	}

	g.healthService.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.healthService.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	g.server.GracefulStop()
}
