package prometheus

import (
	"property-catalog/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Catalog metrics
	CatalogSizeGauge     prometheus.GaugeVec
	CatalogLoadDuration  prometheus.Histogram
	LookupMissesCounter  prometheus.Counter
	PropertyViewsCounter prometheus.CounterVec
	ListingQueryCounter  prometheus.CounterVec

	// Mail relay metrics
	MailRelayCounter prometheus.CounterVec

	// Lead intake metrics
	LeadsReceivedCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Catalog size by category, set once after the store is loaded
	CatalogSizeGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_properties",
			Help: "Number of properties in the catalog",
		},
		[]string{"category"},
	)

	// Startup load duration
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Lookup misses
	LookupMissesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_lookup_misses_total",
			Help: "Total number of property lookups that found nothing",
		},
	)

	// Property detail views, by category only to keep label cardinality
	// bounded as the catalog grows
	PropertyViewsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_property_views_total",
			Help: "Total number of property detail views",
		},
		[]string{"category"},
	)

	// Listing queries by filter
	ListingQueryCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_listing_queries_total",
			Help: "Total number of listing queries",
		},
		[]string{"category", "listing_type"},
	)

	// Mail relay outcomes
	MailRelayCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_mail_relay_total",
			Help: "Total number of mail relay attempts",
		},
		[]string{"kind", "outcome"},
	)

	// Lead submissions
	LeadsReceivedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_leads_received_total",
			Help: "Total number of property leads received",
		},
	)
}

// TrackCatalogLoad returns a function that records the duration of a catalog load
func TrackCatalogLoad() func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		CatalogLoadDuration.Observe(duration)
	}
}

// RecordPropertyView increments the counter for property detail views
func RecordPropertyView(category string) {
	PropertyViewsCounter.WithLabelValues(category).Inc()
}

// RecordListingQuery increments the counter for listing queries
func RecordListingQuery(category string, listingType string) {
	ListingQueryCounter.WithLabelValues(category, listingType).Inc()
}

// RecordMailRelay increments the counter for mail relay attempts
func RecordMailRelay(kind string, outcome string) {
	MailRelayCounter.WithLabelValues(kind, outcome).Inc()
}
