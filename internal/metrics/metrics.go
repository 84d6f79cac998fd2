// Package metrics exposes prometheus counters for keyring operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service owns the prometheus registry of this process.
type Service struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

// New builds the registry with go runtime, process and keyring collectors.
func New() *Service {
	registry := prometheus.NewRegistry()

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keyring",
		Name:      "operations_total",
		Help:      "Keyring operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	registry.MustRegister(
		operations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Service{
		registry:   registry,
		operations: operations,
	}
}

// IncOperation counts one keyring operation with its outcome.
func (s *Service) IncOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	s.operations.WithLabelValues(operation, outcome).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
