package store

// Recovery reasons, used as the metric label and log attribute
const (
	RecoveryReasonDecode     = "decode"
	RecoveryReasonUnreadable = "unreadable"
)

// File permissions
const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// Log messages
const (
	LogMsgDocumentRecovered = "Inventory document unusable, continuing with an empty document"
	LogMsgDocumentSaved     = "Inventory document saved"
	LogMsgCacheHit          = "Inventory document served from cache"
)
