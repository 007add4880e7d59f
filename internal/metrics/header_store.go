package metrics

import (
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headerStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headeroracle",
		Subsystem: "header_store",
		Name:      "operations_total",
		Help:      "Count of header store operations.",
	}, []string{"operation", "coin", "network", "status"})
	headerStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "header_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of header store operations.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "coin", "network", "status"})
)

// HeaderStore tracks metrics for the persistent header store.
type HeaderStore struct {
	coin    model.Coin
	network model.Network
}

// NewHeaderStore constructs a HeaderStore collector for one chain type.
func NewHeaderStore(coin model.Coin, network model.Network) *HeaderStore {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &HeaderStore{coin: coin, network: network}
}

// Observe records duration and status of a store operation.
func (m HeaderStore) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	headerStoreOperationsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	headerStoreOperationDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}
