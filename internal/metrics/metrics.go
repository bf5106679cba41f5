package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Session Metrics
var (
	SessionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
		[]string{LabelMode},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)
)

// Greedy Metrics
var (
	ClaimOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClaimOutcomes,
			Help: HelpTextClaimOutcomes,
		},
		[]string{LabelOutcome},
	)

	CasesReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCasesReleased,
			Help: HelpTextCasesReleased,
		},
	)

	CasesReplenished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCasesReplenished,
			Help: HelpTextCasesReplenished,
		},
	)

	CasesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCasesUploaded,
			Help: HelpTextCasesUploaded,
		},
	)
)

// Auction Metrics
var (
	BidsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBidsSubmitted,
			Help: HelpTextBidsSubmitted,
		},
	)

	AuctionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuctionsResolved,
			Help: HelpTextAuctionsResolved,
		},
		[]string{LabelTrigger},
	)

	AuctionAssignments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuctionAssignments,
			Help: HelpTextAuctionAssignments,
		},
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionDuration,
			Help:    HelpTextResolutionDuration,
			Buckets: ResolutionBuckets,
		},
	)

	PersistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
	)
)
