package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upload lifecycle metrics
var (
	UploadEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_uploader_events_total",
			Help: "Total number of upload lifecycle events dispatched",
		},
		[]string{"type"},
	)

	QueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlist_uploader_queue_length",
			Help: "Number of files currently tracked in the upload queue",
		},
	)
)

// Activation metrics
var (
	ActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_uploader_activations_total",
			Help: "Total number of playlist activations by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	ActivationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlist_uploader_activation_duration_seconds",
			Help:    "Playlist activation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"source"},
	)

	NavigationRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_uploader_navigation_requests_total",
			Help: "Total number of navigation requests emitted",
		},
	)
)

// Session and catalog metrics
var (
	SessionChannels = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlist_uploader_session_channels",
			Help: "Number of channels in the active session",
		},
	)

	CatalogSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playlist_uploader_catalog_skipped_total",
			Help: "Total number of stored playlists skipped because they could not be decoded",
		},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlist_uploader_store_operations_total",
			Help: "Total number of playlist store operations",
		},
		[]string{"operation", "status"},
	)
)
