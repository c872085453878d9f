package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	socketPath   string
	useDaemon    bool
	outputFormat string
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "craftchain",
		Short: "craftchain - plan crafting chains from pinned recipes",
		Long: `craftchain resolves bookmark groups of pinned recipes into craft counts,
raw inputs and leftovers. Groups are stored in the configured database and can be
resolved in-process or by a running craftchain-daemon.

Examples:
  craftchain group import alloys.yaml
  craftchain group list
  craftchain resolve --group alloys
  craftchain resolve --file alloys.yaml --skip-calculation
  craftchain resolve --group alloys --daemon --output json
  craftchain history --group alloys --limit 5
  craftchain config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml, /etc/craftchain/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", getDefaultSocketPath(),
		"Path to daemon Unix socket (default: daemon.socket_path)")
	rootCmd.PersistentFlags().BoolVar(&useDaemon, "daemon", false,
		"Send requests to a running daemon instead of resolving in-process")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"Output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewGroupCommand())
	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// getDefaultSocketPath returns the socket path from the environment, or empty to use config
func getDefaultSocketPath() string {
	return os.Getenv("CRAFTCHAIN_SOCKET")
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
