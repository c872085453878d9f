package config

import "time"

// DaemonConfig holds daemon service configuration
type DaemonConfig struct {
	// Unix socket path for IPC
	SocketPath string `mapstructure:"socket_path" validate:"required"`

	// PID file location
	PIDFile string `mapstructure:"pid_file" validate:"required"`

	// Planner calls admitted per second, with Burst extra calls in a spike
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
