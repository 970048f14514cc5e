// Package metrics exposes Prometheus instrumentation for the codec and the
// dispatch runtime.
//
// All methods are safe to call on a nil *Metrics, so components can take an
// optional *Metrics without guarding every call site.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace is the metric namespace used when none is configured.
const DefaultNamespace = "arsdk"

// Metrics contains the command layer metrics.
type Metrics struct {
	CommandsEncoded    *prometheus.CounterVec
	CommandsDecoded    *prometheus.CounterVec
	CodecErrors        *prometheus.CounterVec
	Notifications      *prometheus.CounterVec
	CallbackErrors     *prometheus.CounterVec
	UnmatchedSubframes *prometheus.CounterVec
	NotifyDuration     *prometheus.HistogramVec
}

// NewMetrics creates the metrics under the given namespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Metrics{
		CommandsEncoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "commands_encoded_total",
				Help:      "Total number of commands encoded",
			},
			[]string{"command"},
		),

		CommandsDecoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "commands_decoded_total",
				Help:      "Total number of commands decoded",
			},
			[]string{"command"},
		),

		CodecErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "errors_total",
				Help:      "Total number of encode and decode failures",
			},
			[]string{"direction"},
		),

		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "notifications_total",
				Help:      "Total number of callback invocations",
			},
			[]string{"command"},
		),

		CallbackErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "callback_errors_total",
				Help:      "Total number of observer callbacks that failed or panicked",
			},
			[]string{"command"},
		),

		UnmatchedSubframes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "multiset",
				Name:      "unmatched_subframes_total",
				Help:      "Total number of multiset sub-frames that were not declared members",
			},
			[]string{"multiset"},
		),

		NotifyDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "notify_duration_seconds",
				Help:      "Time spent decoding and delivering one inbound command",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
			[]string{"command"},
		),
	}
}

// Register registers all metrics with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.CommandsEncoded,
		m.CommandsDecoded,
		m.CodecErrors,
		m.Notifications,
		m.CallbackErrors,
		m.UnmatchedSubframes,
		m.NotifyDuration,
	}
}

// Direction labels for CodecErrors.
const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

// Encoded counts an encoded command.
func (m *Metrics) Encoded(command string) {
	if m == nil {
		return
	}
	m.CommandsEncoded.WithLabelValues(command).Inc()
}

// Decoded counts a decoded command.
func (m *Metrics) Decoded(command string) {
	if m == nil {
		return
	}
	m.CommandsDecoded.WithLabelValues(command).Inc()
}

// CodecError counts a codec failure in the given direction.
func (m *Metrics) CodecError(direction string) {
	if m == nil {
		return
	}
	m.CodecErrors.WithLabelValues(direction).Inc()
}

// Notified counts a callback invocation.
func (m *Metrics) Notified(command string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(command).Inc()
}

// CallbackFailed counts a failed callback.
func (m *Metrics) CallbackFailed(command string) {
	if m == nil {
		return
	}
	m.CallbackErrors.WithLabelValues(command).Inc()
}

// Unmatched counts n unmatched multiset sub-frames.
func (m *Metrics) Unmatched(multiset string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.UnmatchedSubframes.WithLabelValues(multiset).Add(float64(n))
}

// ObserveNotify records the duration of one Notify call.
func (m *Metrics) ObserveNotify(command string, d time.Duration) {
	if m == nil {
		return
	}
	m.NotifyDuration.WithLabelValues(command).Observe(d.Seconds())
}
