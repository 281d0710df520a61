package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIngestCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Run one ingest cycle now",
		Long: `Fetch the latest items for every configured category, rewrite them and
store the new ones. Uses the same environment as the API server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, closeStore, err := deps.OpenStore(ctx)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer closeStore()

			pipeline, err := deps.NewPipeline(store)
			if err != nil {
				return fmt.Errorf("build pipeline: %w", err)
			}

			report, err := pipeline.RunCycle(ctx)
			out := cmd.OutOrStdout()
			renderReport(out, report)
			if err != nil {
				return fmt.Errorf("ingest cycle: %w", err)
			}

			if report.Inserted == 0 {
				warn(out, "No new articles stored")
				return nil
			}
			success(out, "Stored %d new article(s)", report.Inserted)
			return nil
		},
	}
}
