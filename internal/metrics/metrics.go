package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/specialistvlad/rtegraph/internal/render"
	"github.com/specialistvlad/rtegraph/internal/resolve"
)

// Run outcomes used as the status label.
const (
	StatusSuccess        = "success"
	StatusIntegrityFault = "integrity_fault"
	StatusError          = "error"
)

// Registry holds the metrics of one run.
type Registry struct {
	registry *prometheus.Registry

	DocumentNodes    *prometheus.GaugeVec
	DocumentEdges    *prometheus.GaugeVec
	DocumentClusters *prometheus.GaugeVec
	DocumentsTotal   prometheus.Counter
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Gauge
}

var _ render.Renderer = (*Registry)(nil)

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	factory := promauto.With(r.registry)

	r.DocumentNodes = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rtegraph_document_nodes",
			Help: "Number of nodes in a rendered document",
		},
		[]string{"document"},
	)
	r.DocumentEdges = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rtegraph_document_edges",
			Help: "Number of edges in a rendered document",
		},
		[]string{"document"},
	)
	r.DocumentClusters = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rtegraph_document_clusters",
			Help: "Number of top-level clusters in a rendered document",
		},
		[]string{"document"},
	)
	r.DocumentsTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "rtegraph_documents_total",
		Help: "Total number of rendered documents",
	})
	r.RunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtegraph_runs_total",
			Help: "Total number of runs by outcome",
		},
		[]string{"status"},
	)
	r.RunDuration = factory.NewGauge(prometheus.GaugeOpts{
		Name: "rtegraph_run_duration_seconds",
		Help: "Wall time of the last run in seconds",
	})
	return r
}

// Render records the size of doc. It lets the registry sit in the renderer
// set, so only documents that are actually rendered are counted.
func (r *Registry) Render(_ context.Context, doc render.Document) error {
	r.DocumentNodes.WithLabelValues(doc.Name).Set(float64(doc.Graph.NodeCount()))
	r.DocumentEdges.WithLabelValues(doc.Name).Set(float64(doc.Graph.EdgeCount()))
	r.DocumentClusters.WithLabelValues(doc.Name).Set(float64(len(doc.Graph.Clusters())))
	r.DocumentsTotal.Inc()
	return nil
}

// RecordRun records the outcome and duration of a run.
func (r *Registry) RecordRun(duration time.Duration, err error) {
	r.RunsTotal.WithLabelValues(Status(err)).Inc()
	r.RunDuration.Set(duration.Seconds())
}

// Status classifies a run error.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, resolve.ErrIntegrity):
		return StatusIntegrityFault
	default:
		return StatusError
	}
}

// WriteToTextfile writes all metrics to path atomically.
func (r *Registry) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
