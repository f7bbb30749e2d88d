package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubscriptionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcast_subscriptions_active",
			Help: "Number of active entity subscriptions",
		},
	)

	FramesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_frames_published_total",
			Help: "Total number of frames delivered to at least one subscriber",
		},
		[]string{"type"},
	)

	FramesDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_frames_dropped_total",
			Help: "Total number of frames no subscriber accepted",
		},
		[]string{"type"},
	)
)
