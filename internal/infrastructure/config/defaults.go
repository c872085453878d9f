package config

import (
	"time"

	"github.com/andrescamacho/craftchain-go/pkg/utils"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" && cfg.Database.Type == "sqlite" {
		cfg.Database.Path = "craftchain.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "craftchain"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "craftchain"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = utils.Min(2, cfg.Database.Pool.MaxOpen)
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.SocketPath == "" {
		cfg.Daemon.SocketPath = "/tmp/craftchain-daemon.sock"
	}
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/craftchain-daemon.pid"
	}
	if cfg.Daemon.RequestsPerSecond == 0 {
		cfg.Daemon.RequestsPerSecond = 50
	}
	if cfg.Daemon.Burst == 0 {
		cfg.Daemon.Burst = 20
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 10 * time.Second
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9464
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "craftchain"
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = "planner"
	}

	// Planner defaults
	if cfg.Planner.HistoryLimit == 0 {
		cfg.Planner.HistoryLimit = 20
	}
	if cfg.Planner.RequestTimeout == 0 {
		cfg.Planner.RequestTimeout = 30 * time.Second
	}
}
