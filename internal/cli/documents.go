package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timelinekit/timelinekit/pkg/view"
)

func newSaveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Store a timeline file and print its document id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readTimeline(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			s, err := a.openStore()
			if err != nil {
				return a.fail(cmd, err)
			}
			defer s.Close()

			id, err := s.SaveTimeline(m)
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Draw a stored timeline, or export it with --out.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return a.fail(cmd, err)
			}
			defer s.Close()

			m, err := s.LoadTimeline(args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			if out != "" {
				if err := writeTimeline(out, m); err != nil {
					return a.fail(cmd, err)
				}
				return nil
			}
			text, err := view.Render(m)
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the timeline to this .json or .cbor file")
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored timelines.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return a.fail(cmd, err)
			}
			defer s.Close()

			ids, err := s.Timelines()
			if err != nil {
				return a.fail(cmd, err)
			}
			for _, id := range ids {
				m, err := s.LoadTimeline(id)
				if err != nil {
					return a.fail(cmd, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, m.Name)
			}
			return nil
		},
	}
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a stored timeline.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return a.fail(cmd, err)
			}
			defer s.Close()

			if err := s.DeleteTimeline(args[0]); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
}
