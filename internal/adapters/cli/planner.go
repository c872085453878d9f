package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftchain-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftchain-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/application/setup"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/infrastructure/config"
	"github.com/andrescamacho/craftchain-go/internal/infrastructure/database"
)

// Planner is the client API shared by the in-process and daemon planners
type Planner interface {
	ResolveGroup(ctx context.Context, name string, skipCalculation bool) (*planning.ResolutionReport, error)
	ResolveDocument(ctx context.Context, doc bookmark.Document, skipCalculation bool) (*planning.ResolutionReport, error)
	ImportGroup(ctx context.Context, doc bookmark.Document) (*commands.ImportGroupResponse, error)
	ListGroups(ctx context.Context) (*queries.ListGroupsResponse, error)
	DeleteGroup(ctx context.Context, name string) error
	ListRuns(ctx context.Context, group string, limit int) (*queries.ListRunsResponse, error)
	Close() error
}

// session bundles what a command needs: config, a planner and a context with its deadline
type session struct {
	cfg     *config.Config
	planner Planner
	ctx     context.Context
	cancel  context.CancelFunc
}

func (s *session) Close() {
	s.cancel()
	if err := s.planner.Close(); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "Warning: failed to close planner: %v\n", err)
	}
}

// openSession loads config and connects to the daemon or opens the database
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	daemon := useDaemon
	if !cmd.Flags().Changed("daemon") {
		if handler, err := config.NewUserConfigHandler(); err == nil {
			if userCfg, err := handler.Load(); err == nil {
				daemon = userCfg.PreferDaemon
			}
		}
	}

	var planner Planner
	if daemon {
		planner, err = openDaemonPlanner(cfg)
	} else {
		planner, err = openLocalPlanner(cfg, cmd.ErrOrStderr())
	}
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Planner.RequestTimeout)
	return &session{cfg: cfg, planner: planner, ctx: ctx, cancel: cancel}, nil
}

func openDaemonPlanner(cfg *config.Config) (Planner, error) {
	path := socketPath
	if path == "" {
		path = cfg.Daemon.SocketPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("daemon socket %s not available: %w (is craftchain-daemon running?)", path, err)
	}

	client, err := grpc.NewPlannerClientGRPC(path)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func openLocalPlanner(cfg *config.Config, logOutput io.Writer) (Planner, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var history planning.RunHistory
	var recorder planning.ResolutionRecorder
	runs := persistence.NewGormResolutionRunRepository(db, nil)
	history = runs
	if cfg.Planner.RecordHistory {
		recorder = runs
	}

	registry := setup.NewHandlerRegistry(persistence.NewGormGroupRepository(db), history, recorder, nil)

	// The CLI prints its own results, so only warnings are logged unless verbose
	level := logging.LevelWarn
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewStdLogger(logOutput, level, cfg.Logging.Format)

	m, err := registry.CreateConfiguredMediator(logging.Middleware(logger))
	if err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to configure mediator: %w", err)
	}

	return grpc.NewPlannerClientLocal(m, func() error { return database.Close(db) }), nil
}
