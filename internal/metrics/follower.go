package metrics

import (
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headeroracle",
		Subsystem: "follower",
		Name:      "sync_total",
		Help:      "Count of follower sync rounds.",
	}, []string{"coin", "network", "status"})

	followerSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "follower",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a follower sync round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	followerSyncHeaders = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "headeroracle",
		Subsystem: "follower",
		Name:      "sync_headers",
		Help:      "Number of headers fetched per sync round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	followerLookback = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "headeroracle",
		Subsystem: "follower",
		Name:      "lookback",
		Help:      "Current number of heights refetched below the oracle tip.",
	}, []string{"coin", "network"})
)

// Follower tracks metrics for the node follower.
type Follower struct {
	coin    model.Coin
	network model.Network
}

// NewFollower constructs a Follower collector with defaults.
func NewFollower(coin model.Coin, network model.Network) *Follower {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Follower{coin: coin, network: network}
}

// ObserveSync records one sync round.
func (m Follower) ObserveSync(err error, headers int, started time.Time) {
	status := statusOf(err)
	followerSyncTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	followerSyncDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	followerSyncHeaders.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(headers))
}

// ObserveLookback sets the lookback gauge.
func (m Follower) ObserveLookback(lookback int64) {
	followerLookback.WithLabelValues(string(m.coin), string(m.network)).Set(float64(lookback))
}
