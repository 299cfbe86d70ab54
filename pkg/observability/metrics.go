package observability

import (
	"log/slog"
	"sync"

	"github.com/aretw0/strata/pkg/frame"
	"github.com/prometheus/client_golang/prometheus"
)

var membersDesc = prometheus.NewDesc(
	"strata_namespace_members",
	"Number of members per facet namespace of the last observed frame.",
	[]string{"namespace"}, nil,
)

// Metrics counts chain steps and exposes the namespace sizes of the last frame built.
type Metrics struct {
	steps   *prometheus.CounterVec
	members *namespaceCollector
}

// NewMetrics creates unregistered metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strata_chain_steps_total",
			Help: "Number of chain steps applied, by step.",
		}, []string{"step"}),
		members: &namespaceCollector{},
	}
}

// Collectors returns every collector owned by m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.steps, m.members}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns the frame hooks feeding m.
func (m *Metrics) Hooks() frame.Hooks {
	return frame.Hooks{
		OnStep: func(step string, f *frame.Frame) {
			m.steps.WithLabelValues(step).Inc()
			m.members.observe(f)
		},
	}
}

type namespaceCollector struct {
	mu     sync.Mutex
	latest *frame.Frame
}

func (c *namespaceCollector) observe(f *frame.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = f
}

func (c *namespaceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- membersDesc
}

func (c *namespaceCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	f := c.latest
	c.mu.Unlock()
	if f == nil {
		return
	}
	for _, path := range f.Paths() {
		ns, _ := f.Namespace(path)
		ch <- prometheus.MustNewConstMetric(membersDesc, prometheus.GaugeValue, float64(ns.Len()), path)
	}
}

// LogHooks logs every namespace of each new stage at debug level.
func LogHooks(logger *slog.Logger) frame.Hooks {
	return frame.Hooks{
		OnStep: func(step string, f *frame.Frame) {
			for _, path := range f.Paths() {
				ns, _ := f.Namespace(path)
				logger.Debug("namespace", "step", step, "path", path, "members", ns.Names())
			}
		},
	}
}
