package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tipWatcherPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "poll_total",
		Help:      "Count of best block polls.",
	}, []string{"network", "status"})

	tipWatcherPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "poll_duration_seconds",
		Help:      "Duration of a best block poll including follow-up lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	tipWatcherBestHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "best_height",
		Help:      "Height of the last observed best block.",
	}, []string{"network"})

	tipWatcherTipChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "tip_changes_total",
		Help:      "Count of observed best block changes.",
	}, []string{"network"})

	tipWatcherChainTips = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tip_watcher",
		Name:      "chain_tips",
		Help:      "Number of known chain tips by status.",
	}, []string{"network", "status"})
)

// TipWatcher tracks metrics for the chain tip watcher.
type TipWatcher struct {
	network string
}

// NewTipWatcher constructs a TipWatcher with defaults.
func NewTipWatcher(network string) *TipWatcher {
	if network == "" {
		network = "unknown"
	}
	return &TipWatcher{network: network}
}

// ObservePoll records a poll outcome and duration.
func (m TipWatcher) ObservePoll(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	tipWatcherPollTotal.WithLabelValues(m.network, status).Inc()
	tipWatcherPollDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveTip records a new best block.
func (m TipWatcher) ObserveTip(height int64) {
	tipWatcherTipChanges.WithLabelValues(m.network).Inc()
	tipWatcherBestHeight.WithLabelValues(m.network).Set(float64(height))
}

// ObserveChainTips records the number of chain tips per status. Statuses missing from byStatus
// are dropped from the network's series.
func (m TipWatcher) ObserveChainTips(byStatus map[string]int) {
	tipWatcherChainTips.DeletePartialMatch(prometheus.Labels{"network": m.network})
	for status, count := range byStatus {
		tipWatcherChainTips.WithLabelValues(m.network, status).Set(float64(count))
	}
}
