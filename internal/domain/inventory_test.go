package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_UserItems(t *testing.T) {
	doc := NewDocument()

	items := doc.UserItems("bot", "user")

	assert.NotNil(t, items)
	assert.Empty(t, items)
	require.Contains(t, doc, "bot")
	assert.Contains(t, doc["bot"], "user")
}

func TestDocument_SetUserItems(t *testing.T) {
	doc := NewDocument()
	doc.SetUserItems("bot", "user", ItemList{{Name: "espada", Quantity: 2}})
	assert.Equal(t, 2, doc["bot"]["user"].TotalQuantity())

	doc.SetUserItems("bot", "user", nil)
	assert.NotNil(t, doc["bot"]["user"], "nil list is stored as empty")
}

func TestDocument_Normalize(t *testing.T) {
	doc := Document{
		"bot": BotInventory{
			"a": ItemList{{Name: "espada", Quantity: -4}, {Name: "escudo", Quantity: 3}, {Name: "arco", Quantity: 0}},
			"b": nil,
		},
		"empty": nil,
	}

	doc.Normalize()

	assert.Equal(t, Quantity(1), doc["bot"]["a"][0].Quantity)
	assert.Equal(t, Quantity(3), doc["bot"]["a"][1].Quantity)
	assert.Equal(t, Quantity(1), doc["bot"]["a"][2].Quantity)
	assert.NotNil(t, doc["bot"]["b"])
	assert.NotNil(t, doc["empty"])
}

func TestDocument_RoundTripKeepsIntegers(t *testing.T) {
	doc := Document{"bot": BotInventory{"user": ItemList{
		{ID: "1", Name: "espada", Quantity: 1},
		{ID: "2", Name: "escudo", Quantity: 7},
		{ID: "3", Name: "poción", Quantity: 1000000},
	}}}

	doc.Normalize()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var loaded Document
	require.NoError(t, json.Unmarshal(raw, &loaded))
	loaded.Normalize()

	assert.Equal(t, doc, loaded)
}

func TestItemList_TotalQuantitySaturates(t *testing.T) {
	items := ItemList{
		{Name: "oro", Quantity: MaxQuantity},
		{Name: "plata", Quantity: MaxQuantity},
		{Name: "cobre", Quantity: 7},
	}
	assert.Equal(t, int(MaxQuantity), items.TotalQuantity())
	assert.Equal(t, 9, ItemList{{Quantity: 2}, {Quantity: 7}}.TotalQuantity())
}

func TestDocument_Clone(t *testing.T) {
	doc := Document{"bot": BotInventory{"user": ItemList{{Name: "espada", Quantity: 1}}}}

	clone := doc.Clone()
	clone["bot"]["user"][0].Quantity = 99
	clone["bot"]["other"] = ItemList{}

	assert.Equal(t, Quantity(1), doc["bot"]["user"][0].Quantity)
	assert.NotContains(t, doc["bot"], "other")
}

func TestItemList_IndexOf(t *testing.T) {
	items := ItemList{{Name: "espada"}, {Name: "Espada"}, {Name: "escudo"}}

	assert.Equal(t, 0, items.IndexOf("espada"))
	assert.Equal(t, 1, items.IndexOf("Espada"), "lookup is case-sensitive")
	assert.Equal(t, -1, items.IndexOf("arco"))
}

func TestItem_DisplayLine(t *testing.T) {
	assert.Equal(t, "📦 espada (×5)", Item{Name: "espada", Quantity: 5}.DisplayLine())
	assert.Equal(t, "🗡️ daga (×1)", Item{Name: "daga", Quantity: 1, Emoji: "🗡️"}.DisplayLine())
	assert.Equal(t, DefaultCategory, Item{}.CategoryOrDefault())
}

func TestInventoryError(t *testing.T) {
	err := NewInventoryError(ErrItemNotFound, ErrMsgItemNotFound)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, ErrMsgItemNotFound, UserMessage(err, "fallback"))
	assert.Equal(t, "fallback", UserMessage(ErrStoreSave, "fallback"))
}
