package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/andrescamacho/craftchain-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftchain-go/internal/adapters/metrics"
	"github.com/andrescamacho/craftchain-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/setup"
	"github.com/andrescamacho/craftchain-go/internal/infrastructure/config"
	"github.com/andrescamacho/craftchain-go/internal/infrastructure/database"
	"github.com/andrescamacho/craftchain-go/internal/infrastructure/pidfile"
)

func main() {
	// Parse command-line flags
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	configFlag := flag.String("config", "", "Path to config file (default: search ., ./configs, /etc/craftchain)")
	flag.Parse()

	fmt.Println("Craftchain Daemon v0.1.0")
	fmt.Println("========================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configFlag)

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)

	err := pf.Acquire()
	if err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			fmt.Println("Existing daemon killed")

			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}

	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Logging
	logOutput, err := cfg.Logging.OpenWriter()
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}
	defer logOutput.Close()
	logger := logging.NewStdLogger(logOutput, cfg.Logging.Level, cfg.Logging.Format)

	// 2. Database
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("Database connected")

	// 3. Repositories
	groupRepo := persistence.NewGormGroupRepository(db)
	runRepo := persistence.NewGormResolutionRunRepository(db, nil) // nil = use RealClock

	var recorders planning.Recorders
	if cfg.Planner.RecordHistory {
		recorders = append(recorders, runRepo)
		fmt.Println("Resolution history enabled")
	}

	// 4. Metrics
	middlewares := []mediator.Middleware{logging.Middleware(logger)}
	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry(cfg.Metrics.Namespace, cfg.Metrics.Subsystem)

		commandCollector := metrics.NewCommandMetricsCollector()
		if err := commandCollector.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		resolutionCollector := metrics.NewResolutionMetricsCollector()
		if err := resolutionCollector.Register(); err != nil {
			return fmt.Errorf("failed to register resolution metrics: %w", err)
		}

		recorders = append(recorders, resolutionCollector)
		middlewares = append(middlewares, metrics.PrometheusMiddleware(commandCollector))

		metricsServer, err = metrics.NewServer(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		metricsServer.Start()
		fmt.Printf("Metrics exposed on http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
	}

	// 5. Mediator with all planning handlers
	var recorder planning.ResolutionRecorder
	if len(recorders) > 0 {
		recorder = recorders
	}
	registry := setup.NewHandlerRegistry(groupRepo, runRepo, recorder, nil)
	med, err := registry.CreateConfiguredMediator(middlewares...)
	if err != nil {
		return fmt.Errorf("failed to configure mediator: %w", err)
	}
	fmt.Println("Planning handlers registered")

	// 6. gRPC server on the unix socket
	daemonServer, err := grpc.NewDaemonServer(med, grpc.DaemonServerOptions{
		SocketPath:        cfg.Daemon.SocketPath,
		RequestsPerSecond: cfg.Daemon.RequestsPerSecond,
		Burst:             cfg.Daemon.Burst,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create daemon server: %w", err)
	}

	fmt.Println("\n✓ Daemon is ready to accept connections")
	fmt.Println("Press Ctrl+C to stop")

	serveErr := daemonServer.Start()

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(ctx); err != nil {
			log.Printf("Warning: failed to stop metrics server: %v", err)
		}
	}

	if serveErr != nil {
		return fmt.Errorf("daemon server error: %w", serveErr)
	}

	fmt.Println("\nDaemon stopped")
	return nil
}
