package socket

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricNamespace = "vmc"
	MetricSubsystem = "socket"
)

// metrics holds the per-socket instrumentation.  Counters are always
// collected; whether they are visible anywhere depends on the Registerer
// supplied in Options.
type metrics struct {
	packetsSent     prometheus.Counter
	packetsReceived prometheus.Counter
	bytesSent       prometheus.Counter
	bytesReceived   prometheus.Counter
	decodeErrors    prometheus.Counter
	sendErrors      prometheus.Counter
}

func newMetrics(r prometheus.Registerer) *metrics {
	m := &metrics{
		packetsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "packets_sent_total",
			Help:      "the total count of OSC packets transmitted",
		}),
		packetsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "packets_received_total",
			Help:      "the total count of OSC packets successfully decoded from received datagrams",
		}),
		bytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "bytes_sent_total",
			Help:      "the total count of bytes transmitted",
		}),
		bytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "bytes_received_total",
			Help:      "the total count of bytes received",
		}),
		decodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "decode_errors_total",
			Help:      "the total count of received datagrams that failed to decode",
		}),
		sendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "send_errors_total",
			Help:      "the total count of transmissions that failed or were truncated",
		}),
	}

	for _, c := range []prometheus.Collector{m.packetsSent, m.packetsReceived, m.bytesSent, m.bytesReceived, m.decodeErrors, m.sendErrors} {
		r.MustRegister(c)
	}

	return m
}

// discardRegisterer accepts all collectors and reports nothing.
type discardRegisterer struct{}

func (discardRegisterer) Register(prometheus.Collector) error  { return nil }
func (discardRegisterer) MustRegister(...prometheus.Collector) {}
func (discardRegisterer) Unregister(prometheus.Collector) bool { return true }
