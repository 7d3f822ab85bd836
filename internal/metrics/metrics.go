// Package metrics holds Prometheus instruments that are used across the
// rendering layer.  All collectors are registered with the global registry,
// so importing this package in main.go is enough to expose them on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renders_total",
			Help: "Completed renders by negotiated media type.",
		},
		[]string{"media_type"},
	)

	RenderErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "render_errors_total",
			Help: "Cumulative number of renders aborted by encoder failure.",
		})

	NotAcceptableTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "not_acceptable_total",
			Help: "Requests whose Accept header matched no advertised media type.",
		})

	HypermediaTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypermedia_assemblies_total",
			Help: "Hypermedia envelope assemblies by flavor.",
		},
		[]string{"flavor"},
	)
)

func init() {
	prometheus.MustRegister(
		RendersTotal,
		RenderErrorsTotal,
		NotAcceptableTotal,
		HypermediaTotal,
	)
}
