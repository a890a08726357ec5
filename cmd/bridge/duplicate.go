package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"serialization-bridge/fixture"
	"serialization-bridge/host/scene"
	"serialization-bridge/internal/diagnostic"
)

func newDuplicateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate",
		Short: "Duplicate the sample scene and show what was carried over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := fixture.NewScene()

			b, err := a.bridgeFor(s)
			if err != nil {
				return err
			}

			out, diags, err := b.Duplicate(s.Root)
			if err != nil {
				return err
			}

			dup, ok := out.(*scene.Object)
			if !ok {
				return fmt.Errorf("unexpected copy type %T", out)
			}

			w := cmd.OutOrStdout()
			title := color.New(color.FgCyan, color.Bold)

			title.Fprintln(w, "Data")
			if test, ok := scene.GetComponent[*fixture.TestComponent](dup); ok && test.Component != nil {
				field(w, "Component.Str", test.Component.Str)
				field(w, "Component.SubComp.Str", test.Component.SubComp.Str)
				field(w, "StringComponent.Value", test.StringComponent.Value)
			}

			title.Fprintln(w, "References")
			if link, ok := scene.GetComponent[*fixture.LinkComponent](dup); ok && link.Links != nil {
				reference(w, "Target", link.Links.Target == dup.Find("Left/Leaf"))
				reference(w, "Sibling", link.Links.Sibling != nil && link.Links.Sibling.Owner() == dup.Find("Left"))
				reference(w, "Outside", link.Links.Outside == s.Outside)
				field(w, "Material", link.Links.Material.Name)
			}

			printDiagnostics(w, diags)

			return nil
		},
	}
}

func field(w io.Writer, name string, value any) {
	color.New(color.FgHiBlack).Fprintf(w, "  %-24s ", name)
	color.New(color.FgWhite).Fprintf(w, "%v\n", value)
}

func reference(w io.Writer, name string, remapped bool) {
	status := color.GreenString("ok")
	if !remapped {
		status = color.RedString("wrong")
	}

	color.New(color.FgHiBlack).Fprintf(w, "  %-24s ", name)
	fmt.Fprintln(w, status)
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	if diags.Len() == 0 {
		return
	}

	color.New(color.FgYellow, color.Bold).Fprintln(w, "Diagnostics")

	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString(d.Severity.String()), d)
		}
	}
}
