// Command lvdsa exercises the lvdsa containers and sorting dispatch from
// the command line.
//
//	lvdsa dispatch [--elem-size N --count N]
//	lvdsa sort --algo auto|insertion|selection|quick|merge|heap --n N --kind ints|names --seed S
//	lvdsa vector
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lvdsa",
		Short:        "Generic containers and size-aware sorting",
		SilenceUsage: true,
	}
	root.AddCommand(newDispatchCmd(), newSortCmd(), newVectorCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
