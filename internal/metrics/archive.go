package metrics

import (
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headeroracle",
		Subsystem: "archive",
		Name:      "events_total",
		Help:      "Count of chain events handed to the archive, by outcome.",
	}, []string{"coin", "network", "outcome"})
)

// Archive tracks metrics for the chain event archive queue.
type Archive struct {
	coin    model.Coin
	network model.Network
}

// NewArchive constructs an Archive collector.
func NewArchive(coin model.Coin, network model.Network) *Archive {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Archive{coin: coin, network: network}
}

// ObserveQueued counts an event accepted by the queue.
func (m Archive) ObserveQueued() {
	archiveEventsTotal.WithLabelValues(string(m.coin), string(m.network), "queued").Inc()
}

// ObserveDropped counts an event that was not archived.
func (m Archive) ObserveDropped() {
	archiveEventsTotal.WithLabelValues(string(m.coin), string(m.network), "dropped").Inc()
}
