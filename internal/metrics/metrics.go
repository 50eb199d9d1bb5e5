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

// Inventory Metrics
var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationsTotal,
			Help: HelpTextOperationsTotal,
		},
		[]string{LabelType, LabelStatus},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameOperationDuration,
			Help:    HelpTextOperationDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelType},
	)

	ItemsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdded,
			Help: HelpTextItemsAdded,
		},
	)

	ItemsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
	)
)

// Document Metrics
var (
	DocumentRecoveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDocumentRecoveries,
			Help: HelpTextDocumentRecoveries,
		},
		[]string{LabelReason},
	)

	DocumentSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDocumentSaves,
			Help: HelpTextDocumentSaves,
		},
		[]string{LabelStatus},
	)
)
