package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timoleistner/plotrna/pkg/colormap"
)

// newColormapsCmd creates the colormaps command, which lists the built-in
// color scales.
func newColormapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colormaps",
		Short: "List the available color scales",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range colormap.Names() {
				if name == colormap.DefaultName {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
