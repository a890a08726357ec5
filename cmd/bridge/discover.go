package main

import (
	"reflect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"serialization-bridge/fixture"
	"serialization-bridge/internal/analyze"
)

var sampleComponents = []reflect.Type{
	reflect.TypeFor[*fixture.TestComponent](),
	reflect.TypeFor[*fixture.LinkComponent](),
	reflect.TypeFor[*fixture.ScoreBoard](),
}

func newDiscoverCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "List the bridged field paths of the sample components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.bridgeFor(fixture.NewScene())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title := color.New(color.FgCyan, color.Bold)
			gray := color.New(color.FgHiBlack)

			for _, root := range sampleComponents {
				targets, err := b.Discover(root)
				if err != nil {
					return err
				}

				title.Fprintf(out, "%s\n", analyze.IDOf(root).Short())

				for _, t := range targets {
					kind := "value"
					if t.IsCollection {
						kind = "collection"
					}

					gray.Fprintf(out, "  %-10s ", kind)
					color.New(color.FgWhite).Fprintf(out, "%s  %s\n", t.Path, analyze.TypeString(t.Type()))
				}
			}

			return nil
		},
	}
}
