package domain

// Operation types accepted in the request envelope
const (
	OperationAdd    = "add"
	OperationGet    = "get"
	OperationDelete = "delete"
	OperationClear  = "clear"
)

// Get formats
const (
	FormatList     = "lista"
	FormatCategory = "categoria"
)

// ObjectAll is the get selector meaning "the whole inventory"
const ObjectAll = "all"

// Item defaults applied on add
const (
	DefaultEmoji    = "📦"
	DefaultRarity   = "común"
	DefaultCategory = "general"
	DefaultQuantity = 1
)

// Result statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// User-facing success messages
const (
	MsgItemAdded          = "Objeto agregado"
	MsgQuantityUpdated    = "Cantidad actualizada"
	MsgInventoryEmpty     = "El inventario está vacío"
	MsgInventoryFormatted = "Inventario formateado"
	MsgInventoryGrouped   = "Inventario agrupado por categorías"
	MsgCategoryItems      = "Objetos en la categoría %q"
	MsgInventoryFull      = "Inventario completo"
	MsgItemsFound         = "Objetos encontrados"
	MsgItemRemovedAtZero  = "Objeto eliminado (cantidad llegó a cero)"
	MsgQuantityReduced    = "Cantidad reducida"
	MsgItemRemoved        = "Objeto eliminado"
	MsgInventoryCleared   = "Se eliminó el inventario completo (%d objetos)"
)
