package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timelinekit/timelinekit/pkg/view"
)

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a timeline file as text.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readTimeline(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			out, err := view.Render(m)
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a timeline file between JSON and CBOR.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readTimeline(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			if err := writeTimeline(args[1], m); err != nil {
				return a.fail(cmd, err)
			}
			l := a.logger()
			l.Info().Str("from", args[0]).Str("to", args[1]).Msg("converted timeline")
			return nil
		},
	}
}
