package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Pallinder/go-randomdata"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdsa/sorting"
	"github.com/katalvlaran/lvdsa/vector"
)

const algoAuto = "auto"

func newSortCmd() *cobra.Command {
	var (
		algo string
		n    int
		kind string
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort generated data and verify the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 0 {
				return fmt.Errorf("sort: negative --n %d", n)
			}
			rng := rand.New(rand.NewSource(seed))

			var (
				used   sorting.Algorithm
				sorted bool
				err    error
			)
			switch kind {
			case "ints":
				data := lo.Times(n, func(int) int { return rng.Intn(n*10 + 1) })
				used, sorted, err = sortVector(algo, data, sorting.Ascending[int]())
			case "names":
				randomdata.CustomRand(rng)
				data := lo.Times(n, func(int) string { return randomdata.SillyName() })
				used, sorted, err = sortVector(algo, data, strings.Compare)
			default:
				return fmt.Errorf("sort: unknown --kind %q", kind)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "kind=%s n=%d algorithm=%s sorted=%t\n", kind, n, used, sorted)
			if !sorted {
				return fmt.Errorf("sort: %s left %s data unsorted", used, kind)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", algoAuto, "auto|insertion|selection|quick|merge|heap")
	cmd.Flags().IntVar(&n, "n", 1000, "number of elements")
	cmd.Flags().StringVar(&kind, "kind", "ints", "ints|names")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// sortVector loads data into a vector and sorts it with the named
// algorithm, or the dispatched one for "auto".
func sortVector[T any](algo string, data []T, cmp sorting.Comparator[T]) (sorting.Algorithm, bool, error) {
	v := vector.From(data)
	defer v.Free()

	used, err := sorting.ParseAlgorithm(algo)
	switch {
	case algo == algoAuto:
		used = v.Sort(cmp)
	case err != nil:
		return 0, false, fmt.Errorf("sort: --algo %q: %w", algo, err)
	default:
		if err = v.SortWith(used, cmp); err != nil {
			return 0, false, err
		}
	}

	return used, sorting.IsSorted(v.Data(), cmp), nil
}
