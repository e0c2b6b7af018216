package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-thumbnails/internal/config"
)

// newListCommand creates the list command printing the configured items in run order
func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured videos and their target files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(a.v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tFILE\tURL")
			for i, item := range settings.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, filepath.Join(filepath.Base(settings.OutputDir), item.Filename), item.URL)
			}
			return w.Flush()
		},
	}
}
