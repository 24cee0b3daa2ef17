package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the client collectors on reg, or on the
// default registerer when reg is nil. Collectors already registered by an
// earlier recorder are shared.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shegerpay",
			Name:      "client_events_total",
			Help:      "ShegerPay client request outcomes",
		},
		[]string{"type", LabelOperation, LabelOutcome},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shegerpay",
			Name:      "client_latency_seconds",
			Help:      "ShegerPay client round trip latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"type", LabelOperation},
	)

	if err := reg.Register(counters); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		counters = existing
	}
	if err := reg.Register(histogram); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, err
		}
		histogram = existing
	}

	return &PrometheusRecorder{
		counters:  counters,
		histogram: histogram,
	}, nil
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"type":         name,
		LabelOperation: labels[LabelOperation],
		LabelOutcome:   labels[LabelOutcome],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"type":         name,
		LabelOperation: labels[LabelOperation],
	}).Observe(d.Seconds())
}
