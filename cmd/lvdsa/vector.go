package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdsa/vector"
)

func newVectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vector",
		Short: "Replay the reference vector scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, run := range []func(io.Writer) error{pushErase, destroyOnce, reserveEmpty} {
				if err := run(out); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func report[T any](w io.Writer, name string, v *vector.Vector[T]) {
	st := v.Stats()
	fmt.Fprintf(w, "%-8s size=%d cap=%d reallocs=%d copies=%d data=%v\n",
		name, v.Size(), v.Cap(), st.Reallocations, st.ElementCopies, v.Data())
}

func pushErase(w io.Writer) error {
	v, err := vector.New[int32](0)
	if err != nil {
		return err
	}
	for i := int32(1); i <= 5; i++ {
		v.PushBack(i)
	}
	report(w, "push", v)
	if err = v.Erase(2); err != nil {
		return err
	}
	report(w, "erase", v)

	return nil
}

func destroyOnce(w io.Writer) error {
	destroyed := 0
	v, err := vector.New(0, vector.WithDestroyer(func(*int) { destroyed++ }))
	if err != nil {
		return err
	}
	for i := 1; i <= 3; i++ {
		v.PushBack(i)
	}
	if err = v.PopBack(); err != nil {
		return err
	}
	report(w, "pop", v)
	v.Free()
	fmt.Fprintf(w, "%-8s destroyed=%d\n", "free", destroyed)

	return nil
}

func reserveEmpty(w io.Writer) error {
	v, err := vector.New[int](0)
	if err != nil {
		return err
	}
	if err = v.Reserve(100); err != nil {
		return err
	}
	report(w, "reserve", v)

	return nil
}
