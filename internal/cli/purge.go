package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errPurgeNotConfirmed = errors.New("refusing to purge without --yes")

func newPurgeCmd(deps Deps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every stored article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errPurgeNotConfirmed
			}

			store, closeStore, err := deps.OpenStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer closeStore()

			n, err := store.Purge(cmd.Context())
			if err != nil {
				return fmt.Errorf("purge: %w", err)
			}
			success(cmd.OutOrStdout(), "Deleted %d article(s)", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
