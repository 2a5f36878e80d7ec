package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gagbot_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gagbot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Messenger metrics
	MessagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_messages_sent_total",
			Help: "Total number of outbound messages accepted by the platform",
		},
	)

	MessagesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_messages_failed_total",
			Help: "Total number of outbound messages that failed",
		},
	)

	// Command metrics
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gagbot_commands_total",
			Help: "Total number of dispatched commands by kind",
		},
		[]string{"kind"},
	)

	CommandsDenied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_commands_denied_total",
			Help: "Total number of commands refused for insufficient role",
		},
	)

	// Feed metrics
	FeedConnects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_feed_connects_total",
			Help: "Total number of successful feed connections",
		},
	)

	FeedDecodeErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_feed_decode_errors_total",
			Help: "Total number of feed frames that could not be decoded",
		},
	)

	StockUpdatesAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_stock_updates_accepted_total",
			Help: "Total number of stock snapshots that triggered a dispatch",
		},
	)

	StockUpdatesDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gagbot_stock_updates_duplicate_total",
			Help: "Total number of stock snapshots dropped as duplicates",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(MessagesSent)
	prometheus.MustRegister(MessagesFailed)
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(CommandsDenied)
	prometheus.MustRegister(FeedConnects)
	prometheus.MustRegister(FeedDecodeErrors)
	prometheus.MustRegister(StockUpdatesAccepted)
	prometheus.MustRegister(StockUpdatesDuplicate)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
