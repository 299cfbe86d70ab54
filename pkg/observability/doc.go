// Package observability reports chain construction to slog and Prometheus.
//
// Both are attached through frame.Hooks, so the chain itself stays free of I/O:
//
//	m := observability.NewMetrics()
//	_ = m.Register(prometheus.DefaultRegisterer)
//	f := strata.New(strata.WithHooks(m.Hooks()), strata.WithHooks(observability.LogHooks(logger)))
package observability
