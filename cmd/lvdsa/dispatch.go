package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdsa/sorting"
)

// tableCounts are the element counts printed when no --count is given;
// they straddle every dispatch threshold.
var tableCounts = []int{0, 1, sorting.ShortRun, sorting.ShortRun + 1, sorting.MediumRun, sorting.MediumRun + 1, 1000}

func newDispatchCmd() *cobra.Command {
	var elemSize, count int
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Show which algorithm Sort picks for an element size and count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sizeSet, countSet := cmd.Flags().Changed("elem-size"), cmd.Flags().Changed("count")
			if sizeSet != countSet {
				return fmt.Errorf("dispatch: --elem-size and --count must be given together")
			}
			if elemSize < 0 || count < 0 {
				return fmt.Errorf("dispatch: negative --elem-size %d or --count %d", elemSize, count)
			}
			if sizeSet {
				fmt.Fprintln(out, sorting.Choose(uintptr(elemSize), count))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "elem-size\tcount\talgorithm")
			for _, size := range []uintptr{sorting.SmallElemSize, sorting.SmallElemSize + 1} {
				for _, n := range tableCounts {
					fmt.Fprintf(tw, "%d\t%d\t%s\n", size, n, sorting.Choose(size, n))
				}
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&elemSize, "elem-size", 0, "element size in bytes")
	cmd.Flags().IntVar(&count, "count", 0, "number of elements")

	return cmd
}
