package main

import (
	"fmt"

	"github.com/aretw0/strata/internal/presentation/graph"
	"github.com/aretw0/strata/pkg/dsl"
	"github.com/aretw0/strata/pkg/frame"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the sample tree as a Mermaid diagram",
		Long:  `Builds the sample C -> B -> A tree through the configured stage and outputs a Mermaid diagram (graph TD).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := a.stage()
			if err != nil {
				return err
			}
			nf, ok := stage.(frame.NodeCapable)
			if !ok {
				return fmt.Errorf("stage %q has no node axis", a.cfg.Stage)
			}

			a1, _ := cmd.Flags().GetInt("a1")
			c1, _ := cmd.Flags().GetInt("c1")

			b := dsl.New()
			b.Add("c").C().Value(c1).Owns("b")
			b.Add("b").B().Owns("a")
			b.Add("a").A().Value(a1)

			root, err := b.Build(nf, "c")
			if err != nil {
				return err
			}

			computed, _ := cmd.Flags().GetBool("computed")
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(root, nf.Structure(), &graph.Overlay{Computed: computed}))
			return nil
		},
	}
	cmd.Flags().Int("a1", 10, "a1 of the sample A")
	cmd.Flags().Int("c1", 1, "c1 of the sample C")
	cmd.Flags().Bool("computed", false, "Highlight nodes whose n2 is present")
	return cmd
}
