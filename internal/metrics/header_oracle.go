package metrics

import (
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	oracleAddHeadersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "add_headers_total",
		Help:      "Count of header batches submitted to the oracle.",
	}, []string{"coin", "network", "status"})

	oracleAddHeadersDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "add_headers_duration_seconds",
		Help:      "Duration of applying a header batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	oracleAddHeadersSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "add_headers_batch_size",
		Help:      "Number of headers per submitted batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	oracleCheckpointTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "checkpoint_operations_total",
		Help:      "Count of checkpoint operations.",
	}, []string{"operation", "coin", "network", "status"})

	oracleCheckpointDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "checkpoint_operation_duration_seconds",
		Help:      "Duration of checkpoint operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})

	oracleReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "best_chain_changes_total",
		Help:      "Count of best chain changes by kind.",
	}, []string{"coin", "network", "kind"})

	oracleReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "reorg_depth",
		Help:      "Number of best chain positions demoted per reorganization.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"coin", "network"})

	oracleBestHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "headeroracle",
		Subsystem: "oracle",
		Name:      "best_height",
		Help:      "Height of the best chain tip.",
	}, []string{"coin", "network"})
)

// HeaderOracle tracks metrics for the header oracle.
type HeaderOracle struct {
	coin    model.Coin
	network model.Network
}

// NewHeaderOracle constructs a HeaderOracle collector for one chain type.
func NewHeaderOracle(coin model.Coin, network model.Network) *HeaderOracle {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &HeaderOracle{coin: coin, network: network}
}

// ObserveAddHeaders records one AddHeaders call.
func (m HeaderOracle) ObserveAddHeaders(err error, headers int, started time.Time) {
	status := statusOf(err)
	oracleAddHeadersTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	oracleAddHeadersDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	oracleAddHeadersSize.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(headers))
}

// ObserveCheckpoint records one checkpoint operation.
func (m HeaderOracle) ObserveCheckpoint(operation string, err error, started time.Time) {
	status := statusOf(err)
	oracleCheckpointTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	oracleCheckpointDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveReorg records a best chain change. A change without demoted positions counts as an extension.
func (m HeaderOracle) ObserveReorg(depth, _ int) {
	if depth == 0 {
		oracleReorgsTotal.WithLabelValues(string(m.coin), string(m.network), "extend").Inc()
		return
	}
	oracleReorgsTotal.WithLabelValues(string(m.coin), string(m.network), "reorg").Inc()
	oracleReorgDepth.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(depth))
}

// ObserveBestHeight sets the best tip height gauge.
func (m HeaderOracle) ObserveBestHeight(height int64) {
	oracleBestHeight.WithLabelValues(string(m.coin), string(m.network)).Set(float64(height))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
