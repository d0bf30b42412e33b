package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the deposit monitor.
type Metrics struct {
	PollTicks         prometheus.Counter
	PollErrors        prometheus.Counter
	DepositsDetected  prometheus.Counter
	CandidatesSkipped *prometheus.CounterVec
	DepositAmountTon  prometheus.Histogram
	QueueDepth        prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PollTicks: factory.NewCounter(prometheus.CounterOpts{
			Name: "tonwatch_poll_ticks_total",
			Help: "Number of poll loop ticks executed.",
		}),
		PollErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "tonwatch_poll_errors_total",
			Help: "Number of ticks that hit a fetch or store error.",
		}),
		DepositsDetected: factory.NewCounter(prometheus.CounterOpts{
			Name: "tonwatch_deposits_detected_total",
			Help: "Number of new deposit events emitted to sinks.",
		}),
		CandidatesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tonwatch_candidates_skipped_total",
			Help: "Number of fetched candidates skipped, by reason.",
		}, []string{"reason"}),
		DepositAmountTon: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tonwatch_deposit_amount_ton",
			Help:    "Distribution of detected deposit amounts in TON.",
			Buckets: prometheus.ExponentialBuckets(0.01, 10, 7),
		}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tonwatch_deposit_queue_depth",
			Help: "Number of deposit events waiting in the blocking queue.",
		}),
	}
}
