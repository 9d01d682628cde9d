package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Bookings persisted in pending state.",
	})

	BookingConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Booking creations rejected because the resource was already booked.",
	}, []string{"resource"})

	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Notification records persisted, by type.",
	}, []string{"type"})

	PushDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "push_deliveries_total",
		Help:      "Web push delivery attempts, by outcome.",
	}, []string{"outcome"})

	AnnouncementsBroadcast = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_broadcast_total",
		Help:      "Announcement broadcasts sent.",
	})

	LiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_connections",
		Help:      "Authenticated realtime connections.",
	})
)
