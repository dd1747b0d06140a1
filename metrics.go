// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HandleBuckets are histogram buckets for per-connection handling time,
// ranging from 1ms to 10s.
var HandleBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}

// Metrics holds the Prometheus collectors recorded by a Server.
type Metrics struct {
	// ConnectionsTotal counts served connections by outcome.
	ConnectionsTotal *prometheus.CounterVec
	// EventsSentTotal counts events accepted by the transport by kind.
	EventsSentTotal *prometheus.CounterVec
	// HandleDuration records time spent serving one connection.
	HandleDuration prometheus.Histogram
}

// NewMetrics creates the collectors under namespace and registers them
// with reg. A nil reg means prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ConnectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "connections_total",
				Help:      "Served connections",
			},
			[]string{"outcome"},
		),
		EventsSentTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_sent_total",
				Help:      "Events sent to the transport",
			},
			[]string{"kind"},
		),
		HandleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "handle_duration_seconds",
				Help:      "Connection handling duration",
				Buckets:   HandleBuckets,
			},
		),
	}
	reg.MustRegister(m.ConnectionsTotal, m.EventsSentTotal, m.HandleDuration)
	return m
}

// NewMetrics returns Metrics registered with reg when metrics are
// enabled, and nil otherwise.
func (c Config) NewMetrics(reg prometheus.Registerer) *Metrics {
	if !c.Metrics.Enabled {
		return nil
	}
	return NewMetrics(c.Metrics.Namespace, reg)
}

func (m *Metrics) observe(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ConnectionsTotal.WithLabelValues(outcome).Inc()
	m.HandleDuration.Observe(d.Seconds())
}

// meteredTransport counts sent events by kind.
type meteredTransport struct {
	Transport
	m *Metrics
}

func (t meteredTransport) Send(ctx context.Context, ev Event) error {
	err := t.Transport.Send(ctx, ev)
	if err == nil {
		t.m.EventsSentTotal.WithLabelValues(string(ev.Kind)).Inc()
	}
	return err
}
