package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a frame
const (
	OutcomeTracked   = "tracked"
	OutcomeMalformed = "malformed"
	OutcomeFailed    = "failed"
)

var (
	FramesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_frames_total",
		Help: "Total number of frames received, by outcome",
	}, []string{"outcome"})

	TracksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_tracks_created_total",
		Help: "Total number of new track identifiers issued",
	})

	TracksEvictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_tracks_evicted_total",
		Help: "Total number of tracks dropped by eviction policy",
	})

	InvariantResetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_invariant_resets_total",
		Help: "Total number of class track states reset after invariant violation",
	})

	DevicesTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_devices",
		Help: "Number of devices known to the track registry",
	})

	AssociationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tracker_association_duration_seconds",
		Help:    "Duration of matching one frame against cached tracks",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
)
