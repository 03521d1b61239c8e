// Package metrics records page loads and metadata builds.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_page"

// Recorder holds the Prometheus collectors. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry     *prom.Registry
	loads        *prom.CounterVec
	loadDuration *prom.HistogramVec
	builds       *prom.CounterVec
}

// NewRecorder registers the collectors on reg, or on a fresh registry when
// reg is nil.
func NewRecorder(reg *prom.Registry) (r *Recorder) {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	r = &Recorder{
		registry: reg,
		loads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Resume record loads by outcome",
		}, []string{"status"}),
		loadDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent fetching and decoding the resume record",
			Buckets:   prom.DefBuckets,
		}, []string{"status"}),
		builds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Page shell builds by outcome",
		}, []string{"result"}),
	}

	reg.MustRegister(r.loads, r.loadDuration, r.builds)
	return r
}

// ObserveLoad records a settled page load.
func (r *Recorder) ObserveLoad(status string, d time.Duration) {
	if r == nil {
		return
	}
	r.loads.WithLabelValues(status).Inc()
	r.loadDuration.WithLabelValues(status).Observe(d.Seconds())
}

// ObserveBuild records the outcome of a metadata build.
func (r *Recorder) ObserveBuild(err error) {
	if r == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.builds.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() (h http.Handler) {
	if r == nil {
		h = http.NotFoundHandler()
		return h
	}
	h = promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return h
}
