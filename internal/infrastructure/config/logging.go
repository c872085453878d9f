package config

import (
	"fmt"
	"io"
	"os"
)

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn warning error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output destination: stdout, stderr, file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// File path (required if output is "file")
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`
}

type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }

// OpenWriter opens the configured output. Closing stdout or stderr is a no-op.
func (c LoggingConfig) OpenWriter() (io.WriteCloser, error) {
	switch c.Output {
	case "stdout":
		return nopCloser{os.Stdout}, nil
	case "file":
		f, err := os.OpenFile(c.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, nil
	default:
		return nopCloser{os.Stderr}, nil
	}
}
