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
	MetricNameRewardsGranted     = "rewards_granted_total"
	MetricNameRewardsOverflowed  = "rewards_overflowed_total"
	MetricNameItemsImproved      = "items_improved_total"
	MetricNameForgeCurrencySpent = "forge_currency_spent_total"
	MetricNameItemsSold          = "items_sold_total"
	MetricNameCurrencyEarned     = "currency_earned_total"
	MetricNameEnergyWakes        = "energy_wakes_total"
	MetricNameEnergyAnomalies    = "energy_anomalies_total"
	MetricNameEnergyTickDuration = "energy_tick_duration_seconds"
	MetricNameProfilesTicked     = "energy_profiles_ticked_total"
	MetricNameProfileCacheLookup = "profile_cache_lookups_total"
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
	HelpTextRewardsGranted     = "Total number of reward items stored in a profile"
	HelpTextRewardsOverflowed  = "Total number of reward items dropped because the profile was full"
	HelpTextItemsImproved      = "Total number of successful forge level-ups"
	HelpTextForgeCurrencySpent = "Total currency spent at the forge"
	HelpTextItemsSold          = "Total number of item instances sold"
	HelpTextCurrencyEarned     = "Total currency earned from selling items"
	HelpTextEnergyWakes        = "Total number of sleeping to awake transitions"
	HelpTextEnergyAnomalies    = "Total number of persisted energy values reset on restore"
	HelpTextEnergyTickDuration = "Duration of one energy regeneration sweep in seconds"
	HelpTextProfilesTicked     = "Total number of sleeping profiles credited by the regeneration job"
	HelpTextProfileCacheLookup = "Total number of profile cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelArchetype = "archetype"
	LabelReason    = "reason"
	LabelResult    = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// PathUnmatched labels requests no route matched
const PathUnmatched = "unmatched"
