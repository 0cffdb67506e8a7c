package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the margin engine.
type Metrics struct {
	// --- Recomputation ---
	RecomputesTotal         prometheus.Counter
	RecomputeErrors         prometheus.Counter
	RecomputeDuration       prometheus.Histogram
	StaleSnapshotsDiscarded prometheus.Counter
	AccountsTracked         prometheus.Gauge

	// --- Fills ---
	FillsApplied      prometheus.Counter
	FillsDeduplicated prometheus.Counter

	// --- Price feed ---
	PriceTicksApplied prometheus.Counter
	PriceTicksDropped prometheus.Counter

	// --- Ingestion ---
	EventsReceived *prometheus.CounterVec
	ParseErrors    *prometheus.CounterVec

	// --- Channel & Backpressure ---
	ChannelSize        *prometheus.GaugeVec
	ChannelCapacity    *prometheus.GaugeVec
	ChannelUtilization *prometheus.GaugeVec
	ProjectionDrops    prometheus.Counter

	// --- Persistence ---
	PersistUpdatesWritten prometheus.Counter
	PersistTradesWritten  prometheus.Counter
	PersistBatchSize      prometheus.Histogram
	PersistBatchDur       prometheus.Histogram
	PersistErrors         *prometheus.CounterVec
	PersistRetry          prometheus.Counter

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	computeBuckets := []float64{
		0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		RecomputesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_recomputes_total",
			Help: "Account snapshots committed",
		}),

		RecomputeErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_recompute_errors_total",
			Help: "Recomputations failed (missing prices, invalid state)",
		}),

		RecomputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "margin_recompute_duration_seconds",
			Help:    "Full pipeline time for one account",
			Buckets: computeBuckets,
		}),

		StaleSnapshotsDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_stale_snapshots_discarded_total",
			Help: "Recompute results beaten by a newer version",
		}),

		AccountsTracked: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "margin_accounts_tracked",
			Help: "Accounts with state in the engine",
		}),

		FillsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_fills_applied_total",
			Help: "Fills folded into PNL histories",
		}),

		FillsDeduplicated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_fills_deduplicated_total",
			Help: "Fills skipped as duplicates (market+order+side)",
		}),

		PriceTicksApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_price_ticks_applied_total",
			Help: "Oracle ticks accepted into the feed cache",
		}),

		PriceTicksDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_price_ticks_dropped_total",
			Help: "Oracle ticks dropped (out of order)",
		}),

		EventsReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "margin_events_received_total",
			Help: "Messages received from NATS",
		}, []string{"subject"}),

		ParseErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "margin_parse_errors_total",
			Help: "Messages rejected by the parser",
		}, []string{"subject"}),

		ChannelSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "margin_channel_size",
			Help: "Current items in channel",
		}, []string{"name"}),

		ChannelCapacity: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "margin_channel_capacity",
			Help: "Channel capacity (constant)",
		}, []string{"name"}),

		ChannelUtilization: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "margin_channel_utilization",
			Help: "Channel size / capacity (0.0-1.0)",
		}, []string{"name"}),

		ProjectionDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_projection_drops_total",
			Help: "Updates dropped due to full projection channel",
		}),

		PersistUpdatesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_persist_updates_written_total",
			Help: "Valuation snapshots written to Postgres",
		}),

		PersistTradesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_persist_trades_written_total",
			Help: "Trade fills written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "margin_persist_batch_size",
			Help:    "Updates per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "margin_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "margin_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "margin_persist_retry_total",
			Help: "Persistence retries",
		}),

		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "margin_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "margin_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "margin_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}

// SetChannelMetrics updates channel utilization metrics.
func (m *Metrics) SetChannelMetrics(name string, size, capacity int) {
	m.ChannelSize.WithLabelValues(name).Set(float64(size))
	m.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	if capacity > 0 {
		m.ChannelUtilization.WithLabelValues(name).Set(float64(size) / float64(capacity))
	}
}
