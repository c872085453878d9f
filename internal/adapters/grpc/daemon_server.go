package grpc

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
)

// DaemonServerOptions configures the daemon server
type DaemonServerOptions struct {
	SocketPath string
	// RequestsPerSecond of zero disables rate limiting
	RequestsPerSecond float64
	Burst             int
	Logger            logging.Logger
}

// DaemonServer serves the planner service on a unix socket
type DaemonServer struct {
	listener   net.Listener
	grpcServer *grpc.Server

	// Shutdown coordination
	shutdownChan chan os.Signal
	done         chan struct{}
}

// NewDaemonServer creates a new daemon server instance
func NewDaemonServer(m mediator.Mediator, opts DaemonServerOptions) (*DaemonServer, error) {
	// Remove existing socket file if present
	if err := os.RemoveAll(opts.SocketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", opts.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create unix socket listener: %w", err)
	}

	// Set socket permissions (owner only)
	if err := os.Chmod(opts.SocketPath, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(opts.Logger),
			RateLimitInterceptor(limiter),
		),
	)
	grpcServer.RegisterService(&PlannerServiceDesc, NewPlannerService(m))

	server := &DaemonServer{
		listener:     listener,
		grpcServer:   grpcServer,
		shutdownChan: make(chan os.Signal, 1),
		done:         make(chan struct{}),
	}

	signal.Notify(server.shutdownChan, os.Interrupt, syscall.SIGTERM)

	return server, nil
}

// Addr returns the socket address
func (s *DaemonServer) Addr() string {
	return s.listener.Addr().String()
}

// Start serves until a shutdown signal arrives or Stop is called
func (s *DaemonServer) Start() error {
	fmt.Printf("Daemon server listening on unix socket: %s\n", s.Addr())

	go s.handleShutdown()

	errChan := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(s.listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-s.done:
		fmt.Println("Initiating graceful shutdown of gRPC server...")
		s.grpcServer.GracefulStop()
		return nil
	}
}

// Stop triggers the same shutdown path as SIGTERM
func (s *DaemonServer) Stop() {
	select {
	case s.shutdownChan <- syscall.SIGTERM:
	default:
	}
}

func (s *DaemonServer) handleShutdown() {
	<-s.shutdownChan
	fmt.Println("\nShutdown signal received, stopping daemon...")
	signal.Stop(s.shutdownChan)
	close(s.done)
}
