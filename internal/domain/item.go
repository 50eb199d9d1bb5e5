package domain

import "fmt"

// Item is one stack of a named object owned by a user. Name is the merge key
// and is unique within an ItemList.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"objeto"`
	Description string   `json:"description"`
	Quantity    Quantity `json:"cantidad"`
	Rarity      string   `json:"rareza"`
	Price       Price    `json:"precio"`
	Emoji       string   `json:"emoji"`
	Category    string   `json:"categoria"`
}

// DisplayEmoji returns the item's emoji or the placeholder glyph
func (i Item) DisplayEmoji() string {
	if i.Emoji == "" {
		return DefaultEmoji
	}
	return i.Emoji
}

// CategoryOrDefault returns the item's category or the general bucket
func (i Item) CategoryOrDefault() string {
	if i.Category == "" {
		return DefaultCategory
	}
	return i.Category
}

// DisplayLine renders the item as "📦 espada (×5)"
func (i Item) DisplayLine() string {
	return fmt.Sprintf("%s %s (×%d)", i.DisplayEmoji(), i.Name, i.Quantity)
}
