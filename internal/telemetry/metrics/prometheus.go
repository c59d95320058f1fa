package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus builds the registry served on the metrics endpoint: runtime
// and process collectors, a fittrack_version gauge labeled with the running
// commit, plus whatever the caller brings (db pool stats).
func SetupPrometheus(versionInfo string, extra ...prometheus.Collector) *prometheus.Registry {
	version := strings.TrimSpace(versionInfo)
	if version == "" {
		version = "unknown"
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "fittrack",
			Name:        "version",
			Help:        "Always 1, labeled with the running build",
			ConstLabels: prometheus.Labels{"version": version},
		}, func() float64 { return 1 }),
	)
	reg.MustRegister(extra...)

	return reg
}
