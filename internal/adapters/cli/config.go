package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftchain-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage craftchain configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (CC_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default group, daemon use) are stored in ~/.craftchain/config.json

Examples:
  craftchain config show
  craftchain config set-group alloys
  craftchain config set-daemon true
  craftchain config clear`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetGroupCommand())
	cmd.AddCommand(newConfigSetDaemonCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, "Craftchain Configuration")
			fmt.Fprintln(out, "========================")

			fmt.Fprintln(out, "User Preferences:")
			defaultGroup := userCfg.DefaultGroup
			if defaultGroup == "" {
				defaultGroup = "(not set)"
			}
			fmt.Fprintf(out, "  Default Group:  %s\n", defaultGroup)
			fmt.Fprintf(out, "  Prefer Daemon:  %t\n", userCfg.PreferDaemon)
			fmt.Fprintf(out, "  Config File:    %s\n\n", userConfigHandler.GetConfigPath())

			fmt.Fprintln(out, "Database:")
			fmt.Fprintf(out, "  Type:           %s\n", cfg.Database.Type)
			if cfg.Database.URL != "" {
				fmt.Fprintf(out, "  URL:            %s\n", maskPassword(cfg.Database.URL))
			} else if cfg.Database.Type == "sqlite" {
				fmt.Fprintf(out, "  Path:           %s\n", cfg.Database.Path)
			} else {
				fmt.Fprintf(out, "  Host:           %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(out, "  Name:           %s\n", cfg.Database.Name)
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Daemon:")
			fmt.Fprintf(out, "  Socket:         %s\n", cfg.Daemon.SocketPath)
			fmt.Fprintf(out, "  Rate Limit:     %.0f req/s (burst %d)\n\n", cfg.Daemon.RequestsPerSecond, cfg.Daemon.Burst)

			fmt.Fprintln(out, "Planner:")
			fmt.Fprintf(out, "  Record History: %t\n", cfg.Planner.RecordHistory)
			fmt.Fprintf(out, "  History Limit:  %d\n", cfg.Planner.HistoryLimit)
			fmt.Fprintf(out, "  Timeout:        %s\n\n", cfg.Planner.RequestTimeout)

			fmt.Fprintln(out, "Metrics:")
			if cfg.Metrics.Enabled {
				fmt.Fprintf(out, "  Endpoint:       http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
				fmt.Fprintf(out, "  Prefix:         %s*\n", cfg.Metrics.MetricPrefix())
			} else {
				fmt.Fprintln(out, "  Disabled")
			}

			return nil
		},
	}
}

func newConfigSetGroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-group <name>",
		Short: "Set the default group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetDefaultGroup(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default group set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigSetDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-daemon <true|false>",
		Short: "Choose whether commands go through the daemon by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefer, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: expected true or false", args[0])
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetPreferDaemon(prefer); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Prefer daemon set to %t\n", prefer)
			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear user preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User preferences cleared")
			return nil
		},
	}
}
