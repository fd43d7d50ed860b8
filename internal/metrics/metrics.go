// Package metrics exposes Prometheus counters for source loads.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tacogips/altadder/internal/source/loader"
)

const namespace = "altadder"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Load result label values.
const (
	ResultOK         = "ok"
	ResultEmptyInput = "empty_input"
	ResultHTTPError  = "http_error"
	ResultParseError = "parse_error"
	ResultOther      = "other"
)

// Collector records loader attempts and load outcomes. It implements
// loader.Recorder.
type Collector struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	loads    *prometheus.CounterVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "attempts_total",
			Help:      "Fetch attempts by attempt kind and outcome.",
		}, []string{"attempt", "outcome"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "loads_total",
			Help:      "Completed loads by result.",
		}, []string{"result"}),
	}
	c.registry.MustRegister(c.attempts, c.loads)
	return c
}

// ObserveAttempt counts one primary or relay request.
func (c *Collector) ObserveAttempt(attempt loader.Attempt, ok bool) {
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailure
	}
	c.attempts.WithLabelValues(string(attempt), outcome).Inc()
}

// ObserveLoad counts a finished load.
func (c *Collector) ObserveLoad(err error) {
	c.loads.WithLabelValues(resultLabel(err)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func resultLabel(err error) string {
	if err == nil {
		return ResultOK
	}
	t, ok := loader.TypeOf(err)
	if !ok {
		return ResultOther
	}
	switch t {
	case loader.EmptyInput:
		return ResultEmptyInput
	case loader.HTTPError:
		return ResultHTTPError
	case loader.ParseError:
		return ResultParseError
	default:
		return ResultOther
	}
}
