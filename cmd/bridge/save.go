package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"serialization-bridge/bridge"
	"serialization-bridge/fixture"
)

func newSaveCommand(a *app) *cobra.Command {
	var node string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Print the persisted state of a sample node as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := fixture.NewScene()

			target := s.Root.Find(node)
			if target == nil {
				return fmt.Errorf("no node at %q", node)
			}

			b, err := a.bridgeFor(s)
			if err != nil {
				return err
			}

			state, err := b.Save(target)
			if err != nil {
				return err
			}

			data, err := bridge.MarshalState(state)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgCyan, color.Bold).Fprintf(out, "# %s: %d targets\n", target.Name, state.Len())

			_, err = out.Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&node, "node", "", "slash path of the node below Root")

	return cmd
}
