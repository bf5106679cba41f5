package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSessionsCreated     = "sessions_created_total"
	MetricNameSessionsActive      = "sessions_active"
	MetricNameClaimOutcomes       = "case_claim_outcomes_total"
	MetricNameCasesReleased       = "cases_released_total"
	MetricNameCasesReplenished    = "cases_replenished_total"
	MetricNameCasesUploaded       = "cases_uploaded_total"
	MetricNameBidsSubmitted       = "auction_bids_submitted_total"
	MetricNameAuctionsResolved    = "auctions_resolved_total"
	MetricNameAuctionAssignments  = "auction_assignments_total"
	MetricNameResolutionDuration  = "auction_resolution_duration_seconds"
	MetricNamePersistenceFailures = "results_persistence_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSessionsCreated     = "Total number of experiment sessions created"
	HelpTextSessionsActive      = "Current number of experiment sessions held in memory"
	HelpTextClaimOutcomes       = "Live channel outcomes by result"
	HelpTextCasesReleased       = "Total number of cases released by their owners"
	HelpTextCasesReplenished    = "Total number of synthetic cases added to keep the pool filled"
	HelpTextCasesUploaded       = "Total number of cases ingested from CSV uploads"
	HelpTextBidsSubmitted       = "Total number of individual bids recorded"
	HelpTextAuctionsResolved    = "Total number of auction resolutions by trigger"
	HelpTextAuctionAssignments  = "Total number of cases assigned by auction resolution"
	HelpTextResolutionDuration  = "Time spent resolving an auction batch"
	HelpTextPersistenceFailures = "Total number of failed result persistence jobs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelMode    = "mode"
	LabelOutcome = "outcome"
	LabelTrigger = "trigger"
)

// Trigger label values for auction resolution
const (
	TriggerBarrier  = "barrier"
	TriggerDeadline = "deadline"
)

// PathUnmatched labels requests that did not match a route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolutionBuckets covers batch resolution times from 10µs to 100ms.
var ResolutionBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
