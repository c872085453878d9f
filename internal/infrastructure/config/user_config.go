package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.craftchain/config.json
type UserConfig struct {
	// Group resolved when the CLI gets neither --group nor --file
	DefaultGroup string `json:"default_group,omitempty"`

	// Use the daemon unless --daemon=false is passed
	PreferDaemon bool `json:"prefer_daemon,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a handler for ~/.craftchain/config.json
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewUserConfigHandlerAt(filepath.Join(homeDir, ".craftchain"))
}

// NewUserConfigHandlerAt creates a handler for config.json inside configDir
func NewUserConfigHandlerAt(configDir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &UserConfigHandler{
		configPath: filepath.Join(configDir, "config.json"),
	}, nil
}

// Load reads the user config from disk
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	if _, err := os.Stat(h.configPath); os.IsNotExist(err) {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(config *UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(h.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultGroup sets the group resolved by default
func (h *UserConfigHandler) SetDefaultGroup(name string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultGroup = name
	return h.Save(config)
}

// SetPreferDaemon sets whether the CLI talks to the daemon by default
func (h *UserConfigHandler) SetPreferDaemon(prefer bool) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.PreferDaemon = prefer
	return h.Save(config)
}

// Clear removes every preference
func (h *UserConfigHandler) Clear() error {
	return h.Save(&UserConfig{})
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
