package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/strata/internal/presentation/tui"
	"github.com/aretw0/strata/pkg/frame"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe the namespaces of the configured stage",
		Long: `Builds the chain up to the configured stage and lists every facet namespace with its
members. Members marked "inherited" were merged in from an earlier stage.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := a.stage()
			if err != nil {
				return err
			}
			md := describe(a.cfg.Stage, stage.View())

			raw, _ := cmd.Flags().GetBool("raw")
			if raw || !isTerminal(cmd.OutOrStdout()) {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			out, err := render(md)
			if err != nil {
				return err
			}
			tui.PrintBanner(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
	return cmd
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// describe renders f as markdown.
func describe(stage string, f *frame.Frame) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Stage `%s`\n\n", stage)

	flip := "unset"
	if v, ok := f.Session().Flip(); ok {
		flip = fmt.Sprint(v)
	}
	fmt.Fprintf(&sb, "Session flip: %s\n", flip)

	for _, path := range f.Paths() {
		ns, _ := f.Namespace(path)
		fmt.Fprintf(&sb, "\n## `%s`\n\n", path)
		for _, name := range ns.Names() {
			origin := "direct"
			if !ns.Direct(name) {
				origin = "inherited"
			}
			fmt.Fprintf(&sb, "- `%s` (%s)\n", name, origin)
		}
	}
	return sb.String()
}
