// Package cli wires the dimacs cleaner into a cobra command tree:
//
//	grclean clean <input.gr> [--output PATH] [--suffix .clean.gr]
//	grclean check <input.gr>
//
// Global flags --config, --log-level and --log-format override config.Load.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grclean/config"
	"github.com/katalvlaran/grclean/logging"
)

// Option customizes a root command before it runs.
type Option func(a *app)

// WithLogger bypasses logging.New and uses log for all subcommands.
func WithLogger(log *zap.Logger) Option {
	return func(a *app) { a.log = log }
}

// WithOutput redirects the human-readable report (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(a *app) { a.out = w }
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	out io.Writer
	log *zap.Logger
	cfg *config.Config

	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the grclean command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{out: os.Stdout}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "grclean",
		Short:         "Deduplicate and symmetrize DIMACS .gr graphs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(newCleanCommand(a), newCheckCommand(a))

	return root
}

// setup resolves configuration and the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		if a.log, err = logging.New(cfg.Log); err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
	}

	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
