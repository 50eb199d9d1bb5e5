package inventory

// Log messages
const (
	LogMsgHandleCalled       = "Inventory operation called"
	LogMsgOperationCompleted = "Inventory operation completed"
	LogMsgOperationRejected  = "Inventory operation rejected"
	LogMsgLoadFailed         = "Failed to load inventory document"
	LogMsgSaveFailed         = "Failed to save inventory document"
	LogMsgDocumentLoaded     = "Inventory document loaded"
)

// Metric label value for request types outside the known operations
const operationUnknown = "unknown"
