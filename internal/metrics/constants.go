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

// Inventory metric names
const (
	MetricNameOperationsTotal    = "inventory_operations_total"
	MetricNameItemsAdded         = "inventory_items_added_total"
	MetricNameItemsRemoved       = "inventory_items_removed_total"
	MetricNameDocumentRecoveries = "inventory_document_recoveries_total"
	MetricNameDocumentSaves      = "inventory_document_saves_total"
	MetricNameOperationDuration  = "inventory_operation_duration_seconds"
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

// Inventory metric help text
const (
	HelpTextOperationsTotal    = "Total number of inventory operations by type and outcome"
	HelpTextItemsAdded         = "Total quantity of items added to inventories"
	HelpTextItemsRemoved       = "Total quantity of items removed from inventories"
	HelpTextDocumentRecoveries = "Times an unreadable inventory document was replaced by an empty one"
	HelpTextDocumentSaves      = "Inventory document saves by outcome"
	HelpTextOperationDuration  = "Inventory operation latency in seconds, including load and save"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelReason = "reason"
)

// Label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets covers fast JSON handlers up to slow disk or database writes
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
