// Package cli implements the newsctl operator commands.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mohammed-danyal/brainrot-news/internal/ingest"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
	"github.com/mohammed-danyal/brainrot-news/pkg/config/env"
	"github.com/mohammed-danyal/brainrot-news/pkg/logging"
	"github.com/spf13/cobra"
)

// CycleRunner runs one ingest cycle and reports what happened.
type CycleRunner interface {
	RunCycle(ctx context.Context) (ingest.Report, error)
}

// Deps are the collaborators commands build lazily, so --help and the
// feed command never need storage credentials.
type Deps struct {
	OpenStore   func(ctx context.Context) (storage.Store, func(), error)
	NewPipeline func(store storage.Store) (CycleRunner, error)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore:   openStoreFromEnv,
		NewPipeline: newPipelineFromEnv,
	}
}

type options struct {
	noColor bool
	verbose bool
}

func NewRootCmd(deps Deps) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "newsctl",
		Short: "Brainrot News operator CLI",
		Long: `newsctl drives the Brainrot News pipeline and feed from a terminal.

Example usage:
  newsctl ingest                      # Run one ingest cycle now
  newsctl feed --category sports      # Show the feed as the web client would
  newsctl feed --more 2 --show <id>   # Reveal two extra pages and open one article
  newsctl purge --yes                 # Delete every stored article`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := env.LoadDotEnv(os.Getenv("ENV"), ".env"); err != nil {
				slog.Debug("No .env file loaded", "error", err)
			}
			logging.Setup()
			if opts.verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			if opts.noColor {
				color.NoColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newIngestCmd(deps),
		newFeedCmd(),
		newPurgeCmd(deps),
	)
	return root
}

// Execute runs newsctl against the real environment.
func Execute() error {
	return NewRootCmd(DefaultDeps()).Execute()
}

func success(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", args...)
}

func warn(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, "⚠ "+format+"\n", args...)
}
