package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PreferencesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_preferences_created_total",
			Help: "Total number of checkout preferences created",
		},
		[]string{"plan", "method"},
	)

	PreferenceFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_preference_failures_total",
			Help: "Total number of failed preference creations",
		},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_webhook_events_total",
			Help: "Total number of webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	SubscriptionsActivatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_subscriptions_activated_total",
			Help: "Total number of subscriptions activated",
		},
		[]string{"plan"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPreferenceCreated(plan, method string) {
	PreferencesCreatedTotal.WithLabelValues(plan, method).Inc()
}

func RecordPreferenceFailure() {
	PreferenceFailuresTotal.Inc()
}

func RecordWebhookEvent(outcome string) {
	WebhookEventsTotal.WithLabelValues(outcome).Inc()
}

func RecordSubscriptionActivated(plan string) {
	SubscriptionsActivatedTotal.WithLabelValues(plan).Inc()
}
