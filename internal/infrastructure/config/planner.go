package config

import "time"

// PlannerConfig holds resolution settings
type PlannerConfig struct {
	// Store every resolution in the resolution_runs table
	RecordHistory bool `mapstructure:"record_history"`

	// Default number of runs listed by the history command
	HistoryLimit int `mapstructure:"history_limit" validate:"min=1,max=1000"`

	// Deadline applied to each CLI request
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required"`
}
