package main

import (
	"github.com/aretw0/strata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Build the configured stage and print its metrics in Prometheus text format",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			m := observability.NewMetrics()
			if err := m.Register(reg); err != nil {
				return err
			}

			if _, err := a.stage(m.Hooks()); err != nil {
				return err
			}

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
