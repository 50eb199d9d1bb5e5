package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages.
// They are user-facing and returned verbatim in the "message" field.
const (
	ErrMsgInvalidBody        = "JSON vacío o inválido"
	ErrMsgMissingParameters  = "Faltan parámetros obligatorios"
	ErrMsgMissingAddFields   = "Faltan objeto o description"
	ErrMsgMissingObject      = "Falta objeto"
	ErrMsgUnknownOperation   = "Tipo de operación inválido"
	ErrMsgItemNotFound       = "Objeto no encontrado"
	ErrMsgCategoryNotFound   = "No hay objetos en la categoría %q"
	ErrMsgStoreUnavailable   = "Error al leer el inventario"
	ErrMsgStoreSave          = "Error al guardar el inventario"
	ErrMsgCorruptDocument    = "corrupt inventory document"
	ErrMsgUnreadableDocument = "unreadable inventory document"
)

// Sentinel errors. Wrap them with NewInventoryError or fmt.Errorf("%w: ...")
// and inspect with errors.Is.
var (
	// Validation errors
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownOperation = errors.New("unknown operation")

	// Lookup errors
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Storage errors
	ErrStoreUnavailable   = errors.New("inventory store unavailable")
	ErrStoreSave          = errors.New("inventory save failed")
	ErrCorruptDocument    = errors.New(ErrMsgCorruptDocument)
	ErrUnreadableDocument = errors.New(ErrMsgUnreadableDocument)
)

// InventoryError pairs a sentinel error with the message shown to the caller.
type InventoryError struct {
	Err     error
	Message string
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

// NewInventoryError builds an InventoryError
func NewInventoryError(kind error, message string) *InventoryError {
	return &InventoryError{Err: kind, Message: message}
}

// UserMessage returns the caller-facing message carried by err, or fallback.
func UserMessage(err error, fallback string) string {
	var invErr *InventoryError
	if errors.As(err, &invErr) && invErr.Message != "" {
		return invErr.Message
	}
	return fallback
}
