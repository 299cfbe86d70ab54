package main

import (
	"fmt"

	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/dsl"
	"github.com/aretw0/strata/pkg/frame"
	"github.com/spf13/cobra"
)

func newMakeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make <kind>",
		Short: "Construct a node of the given kind and print its values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			stage, err := a.stage()
			if err != nil {
				return err
			}
			mk, ok := stage.(frame.MakeCapable)
			if !ok {
				return fmt.Errorf("stage %q cannot make nodes", a.cfg.Stage)
			}

			b := dsl.New()
			nb := b.Add("node").Of(kind)
			if cmd.Flags().Changed("value") {
				v, _ := cmd.Flags().GetInt("value")
				nb.Value(v)
			}
			n, err := b.Build(mk, "node")
			if err != nil {
				return err
			}

			get := mk.Accessors()
			fmt.Fprintf(cmd.OutOrStdout(), "kind=%s n1=%d n2=%s v=%s\n",
				n.Tag(), n.N1(), optional(n.N2()), optional(get.V(n)))
			return nil
		},
	}
	cmd.Flags().Int("value", 0, "Value for the kind's free field")
	return cmd
}

func optional(v int, ok bool) string {
	if !ok {
		return "absent"
	}
	return fmt.Sprint(v)
}
