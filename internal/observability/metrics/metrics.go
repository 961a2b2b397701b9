package metrics

import "github.com/prometheus/client_golang/prometheus"

// TriageMetrics exposes counters/histograms for the triage and screening flows.
type TriageMetrics struct {
	chatTotal       *prometheus.CounterVec
	screeningTotal  *prometheus.CounterVec
	dispatchLatency prometheus.Histogram
}

func NewTriageMetrics(reg prometheus.Registerer) *TriageMetrics {
	m := &TriageMetrics{
		chatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nurtura",
			Subsystem: "triage",
			Name:      "chat_total",
			Help:      "Total chat messages dispatched",
		}, []string{"topic", "outcome"}),
		screeningTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nurtura",
			Subsystem: "screening",
			Name:      "runs_total",
			Help:      "Total screenings scored",
		}, []string{"risk"}),
		dispatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nurtura",
			Subsystem: "triage",
			Name:      "dispatch_latency_seconds",
			Help:      "Latency of message dispatch",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatTotal, m.screeningTotal, m.dispatchLatency)
	return m
}

func (m *TriageMetrics) ObserveChat(topic, outcome string) {
	if m == nil {
		return
	}
	m.chatTotal.WithLabelValues(topic, outcome).Inc()
}

func (m *TriageMetrics) ObserveScreening(risk string) {
	if m == nil {
		return
	}
	m.screeningTotal.WithLabelValues(risk).Inc()
}

func (m *TriageMetrics) ObserveDispatchLatency(seconds float64) {
	if m == nil {
		return
	}
	m.dispatchLatency.Observe(seconds)
}
