package rojo

import "github.com/prometheus/client_golang/prometheus"

var TreeMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rojo",
	Subsystem: "tree",
	Name:      "mutations",
}, []string{"op"})

var SpecifiedRefConflicts = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "rojo",
	Subsystem: "tree",
	Name:      "specified_ref_conflicts",
	Help:      "Duplicate user-specified ref declarations observed.",
})

var LiveInstances = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "rojo",
	Subsystem: "tree",
	Name:      "live_instances",
})

// RegisterMetrics registers the package's collectors on reg. Call it once
// per process; registering twice returns an AlreadyRegisteredError.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{TreeMutations, SpecifiedRefConflicts, LiveInstances} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
