// Package metrics exposes the render pipeline's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the pipeline counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// FramesRendered counts completed render iterations.
	FramesRendered prometheus.Counter
	// InferenceErrors counts skipped cycles due to recoverable model errors.
	InferenceErrors prometheus.Counter
	// CameraSwitches counts completed camera switch actions.
	CameraSwitches prometheus.Counter
	// FPS is the most recent once-per-second frame rate report.
	FPS prometheus.Gauge
}

// New creates the metric set on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poseview_frames_rendered_total",
			Help: "Completed render loop iterations.",
		}),
		InferenceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poseview_inference_errors_total",
			Help: "Render cycles skipped because inference failed.",
		}),
		CameraSwitches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poseview_camera_switches_total",
			Help: "Completed camera switch actions.",
		}),
		FPS: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "poseview_fps",
			Help: "Frames rendered over the last reporting window.",
		}),
	}

	m.registry.MustRegister(m.FramesRendered, m.InferenceErrors, m.CameraSwitches, m.FPS)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
