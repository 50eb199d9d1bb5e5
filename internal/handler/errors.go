package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgGenericServerError = "Error interno del servidor"
	ErrMsgBodyTooLarge       = "Cuerpo de la solicitud demasiado grande"
	ErrMsgStoreNotReady      = "inventory store unreachable"
)

// Status values for the health and home endpoints
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusOnline      = "online"
	MsgAPIRunning     = "API funcionando"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgInvalidBody      = "Invalid inventory request body"
	LogMsgValidationFailed = "Inventory request failed validation"
	LogMsgInventoryRequest = "Inventory request"
	LogMsgOperationFailed  = "Inventory operation failed"
	LogMsgReadinessFailed  = "Readiness check failed"
)
