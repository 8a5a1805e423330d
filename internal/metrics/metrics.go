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

// Loot and forge metrics
var (
	RewardsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsGranted,
			Help: HelpTextRewardsGranted,
		},
		[]string{LabelArchetype},
	)

	RewardsOverflowed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsOverflowed,
			Help: HelpTextRewardsOverflowed,
		},
	)

	ItemsImproved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsImproved,
			Help: HelpTextItemsImproved,
		},
		[]string{LabelArchetype},
	)

	ForgeCurrencySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameForgeCurrencySpent,
			Help: HelpTextForgeCurrencySpent,
		},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelArchetype},
	)

	CurrencyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyEarned,
			Help: HelpTextCurrencyEarned,
		},
	)
)

// Energy metrics
var (
	EnergyWakes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnergyWakes,
			Help: HelpTextEnergyWakes,
		},
		[]string{LabelReason},
	)

	EnergyAnomalies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEnergyAnomalies,
			Help: HelpTextEnergyAnomalies,
		},
	)

	EnergyTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEnergyTickDuration,
			Help:    HelpTextEnergyTickDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	ProfilesTicked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesTicked,
			Help: HelpTextProfilesTicked,
		},
	)
)

// Profile cache metrics
var ProfileCacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricNameProfileCacheLookup,
		Help: HelpTextProfileCacheLookup,
	},
	[]string{LabelResult},
)
