package domain

// Request is the decoded envelope of one inventory call. Optional fields are
// pointers so "absent" can be told apart from "empty".
type Request struct {
	Type        string       `json:"type" validate:"required"`
	BotID       Identifier   `json:"botID" validate:"required"`
	UserID      Identifier   `json:"userID" validate:"required"`
	Object      *string      `json:"objeto,omitempty"`
	Description *string      `json:"description,omitempty"`
	Quantity    *LooseNumber `json:"cantidad,omitempty"`
	Rarity      *string      `json:"rareza,omitempty"`
	Price       *LooseNumber `json:"precio,omitempty"`
	Emoji       *string      `json:"emoji,omitempty"`
	Category    *string      `json:"categoria,omitempty"`
	Format      string       `json:"format,omitempty"`

	// ItemID is accepted for compatibility with older callers; delete
	// matches by name only.
	ItemID string `json:"id,omitempty"`
}

// StringOr dereferences p, returning def when it is nil
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Result is the payload returned to the caller for every operation.
// Collection fields use omitzero so an empty but present result set is still
// written as [] or {}.
type Result struct {
	Status          string              `json:"status"`
	Message         string              `json:"message,omitempty"`
	Object          string              `json:"objeto,omitempty"`
	Quantity        int                 `json:"cantidad,omitempty"`
	Category        string              `json:"categoria,omitempty"`
	TotalItems      *int                `json:"total_items,omitempty"`
	Removed         *int                `json:"eliminados,omitempty"`
	Inventory       ItemList            `json:"inventario,omitzero"`
	Results         ItemList            `json:"resultados,omitzero"`
	List            []string            `json:"lista,omitzero"`
	Categories      map[string][]string `json:"categorias,omitzero"`
	TotalCategories *int                `json:"total_categorias,omitempty"`
}

// ErrorResult builds an error payload with the given message
func ErrorResult(message string) *Result {
	return &Result{Status: StatusError, Message: message}
}
