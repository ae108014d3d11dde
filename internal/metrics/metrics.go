// Package metrics exposes gowordring's internal counters as Prometheus
// collectors. Nothing in the parsing hot path depends on this package
// being wired up; the counters are incremented through a tiny interface
// so the trie and parser stay importable without dragging a metrics
// server into every build.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the collectors gowordring reports.
type Registry struct {
	TrieHeapNodes   prometheus.Gauge
	TrieOperations  *prometheus.CounterVec
	ParseInvocations prometheus.Counter
}

// NewRegistry creates a Registry and registers its collectors with reg.
// Pass prometheus.NewRegistry() for an isolated registry, or
// prometheus.DefaultRegisterer to join the process-wide default.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		TrieHeapNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gowordring",
			Subsystem: "trie",
			Name:      "heap_nodes",
			Help:      "Current number of allocated (base,check) slots in the trie heap.",
		}),
		TrieOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gowordring",
			Subsystem: "trie",
			Name:      "operations_total",
			Help:      "Trie operations by kind (insert, erase, lookup, relocate).",
		}, []string{"op"}),
		ParseInvocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gowordring",
			Name:      "parse_invocations_total",
			Help:      "Number of Parse/ParseFragment calls served.",
		}),
	}
	reg.MustRegister(r.TrieHeapNodes, r.TrieOperations, r.ParseInvocations)
	return r
}

// Collector is implemented by components that report into a Registry.
// No type in this module implements it; the CLI reports through the
// package-level Observe helpers below.
type Collector interface {
	CollectMetrics(r *Registry)
}

var active *Registry

// SetActive installs the registry that package-level helpers report to.
// Until called, ObserveTrieOp and ObserveParse are no-ops.
func SetActive(r *Registry) {
	active = r
}

// ObserveTrieOp increments the named trie operation counter, if a registry
// is active.
func ObserveTrieOp(op string) {
	if active == nil {
		return
	}
	active.TrieOperations.WithLabelValues(op).Inc()
}

// ObserveTrieHeapSize sets the current trie heap node count, if a registry
// is active.
func ObserveTrieHeapSize(n int) {
	if active == nil {
		return
	}
	active.TrieHeapNodes.Set(float64(n))
}

// ObserveParse increments the parse invocation counter, if a registry is
// active.
func ObserveParse() {
	if active == nil {
		return
	}
	active.ParseInvocations.Inc()
}
