package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timelinekit/timelinekit/pkg/heap"
)

func newHeapCommand(a *app) *cobra.Command {
	var useMax bool
	cmd := &cobra.Command{
		Use:   "heap [--max] <numbers...>",
		Short: "Build a heap from numbers, print its tree and drain it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := heap.NewMin[float64]()
			if useMax {
				h = heap.NewMax[float64]()
			}
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return a.fail(cmd, fmt.Errorf("not a number: %q", arg))
				}
				if err := h.Add(v); err != nil {
					return a.fail(cmd, err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, h.String())

			drained := make([]string, 0, h.Len())
			for h.Len() > 0 {
				v, err := h.Pop()
				if err != nil {
					return a.fail(cmd, err)
				}
				drained = append(drained, strconv.FormatFloat(v, 'g', -1, 64))
			}
			fmt.Fprintln(out, strings.Join(drained, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&useMax, "max", false, "keep the largest number at the root")
	return cmd
}
