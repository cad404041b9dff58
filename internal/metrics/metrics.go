package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	snapshotLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "floorline",
			Name:      "snapshot_load_total",
			Help:      "Count of snapshot loads by result.",
		},
		[]string{"result"},
	)

	timelineEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "floorline",
			Name:      "timeline_events_total",
			Help:      "Count of timeline events produced by the layout engine, by type.",
		},
		[]string{"type"},
	)

	exports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "floorline",
			Name:      "export_total",
			Help:      "Count of day-plan workbook exports.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(snapshotLoads, timelineEvents, exports)
	})
}

func IncSnapshotLoad(result string) {
	snapshotLoads.WithLabelValues(result).Inc()
}

func AddTimelineEvents(eventType string, n int) {
	timelineEvents.WithLabelValues(eventType).Add(float64(n))
}

func IncExport() {
	exports.Inc()
}
