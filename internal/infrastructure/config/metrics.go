package config

// MetricsConfig controls the Prometheus endpoint of the daemon
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Path string `mapstructure:"path" validate:"required,url_path"`

	// Metric names are <namespace>_<subsystem>_<name>, craftchain_planner_* by default
	Namespace string `mapstructure:"namespace" validate:"required,metric_name"`
	Subsystem string `mapstructure:"subsystem" validate:"omitempty,metric_name"`
}

// MetricPrefix returns the prefix shared by every exported metric name
func (c MetricsConfig) MetricPrefix() string {
	if c.Subsystem == "" {
		return c.Namespace + "_"
	}
	return c.Namespace + "_" + c.Subsystem + "_"
}
