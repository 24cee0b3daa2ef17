// Package metrics records client request counters and latencies.
package metrics

import "time"

// Metric names emitted by the transport.
const (
	RequestsTotal  = "requests"
	RequestLatency = "request"
)

// Label keys understood by recorders.
const (
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// OrNoop returns r, or a NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
