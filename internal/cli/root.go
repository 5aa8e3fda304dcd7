// Package cli implements the boxtree command.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/boxtree/internal/config"
)

// Version is the boxtree release.
const Version = "0.1.0"

// RootOptions holds global flags and the state every command shares.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// Set before any subcommand runs.
	Config *config.Config
	Log    *zap.Logger
}

// NewRootCommand creates the root command for the boxtree CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "boxtree",
		Short: "Lay out box trees described in YAML scenes",
		Long: `boxtree computes flexbox layouts for scenes described in YAML and prints the
resulting geometry of every node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Log != nil {
				_ = opts.Log.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "configuration file (YAML)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewComputeCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func (opts *RootOptions) prepare() error {
	cfg, err := config.LoadConfiguration(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if opts.Verbose {
		cfg.Logging.ConsoleLogger.Level = "debug"
	}
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to prepare logging", err)
	}
	opts.Config = cfg
	opts.Log = log
	return nil
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("boxtree version " + Version + "\n"))
			return err
		},
	}
}
