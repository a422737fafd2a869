package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/grindlemire/go-sortable/internal/debug"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// Values are usually injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the sortable CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		verbose  bool
		debugLog string
	)

	root := &cobra.Command{
		Use:   "sortable",
		Short: "Lay out and reorder sortable collections",
		Long: `sortable computes grid and flex layouts for a collection of items and
replays drag-to-reorder gestures against them.

Scenes are TOML files describing the container, its items and, optionally,
a script of pointer steps.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			if debugLog != "" {
				if err := debug.Init(debugLog); err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sortable %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&debugLog, "debug-log", os.Getenv(debug.EnvVar), "write container internals to this file")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newDemoCmd())
	return root
}
