package domain

// ItemList is a user's ordered inventory; insertion order is display order.
type ItemList []Item

// BotInventory maps user ids to their item lists
type BotInventory map[string]ItemList

// Document is the whole persisted state: bot id -> user id -> items.
type Document map[string]BotInventory

// NewDocument returns an empty document
func NewDocument() Document {
	return Document{}
}

// UserItems returns the user's list, creating the bot and user entries on
// first reference.
func (d Document) UserItems(botID, userID string) ItemList {
	bot, ok := d[botID]
	if !ok || bot == nil {
		bot = BotInventory{}
		d[botID] = bot
	}
	items, ok := bot[userID]
	if !ok || items == nil {
		items = ItemList{}
		bot[userID] = items
	}
	return items
}

// SetUserItems replaces the user's list
func (d Document) SetUserItems(botID, userID string, items ItemList) {
	if items == nil {
		items = ItemList{}
	}
	d.UserItems(botID, userID)
	d[botID][userID] = items
}

// Normalize brings every quantity into [1, MaxQuantity] and replaces null
// collections with empty ones. It is applied on every load and save.
func (d Document) Normalize() {
	for botID, bot := range d {
		if bot == nil {
			d[botID] = BotInventory{}
			continue
		}
		for userID, items := range bot {
			if items == nil {
				bot[userID] = ItemList{}
				continue
			}
			for i := range items {
				items[i].Quantity = items[i].Quantity.Normalize()
			}
		}
	}
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for botID, bot := range d {
		copied := make(BotInventory, len(bot))
		for userID, items := range bot {
			copied[userID] = append(ItemList{}, items...)
		}
		out[botID] = copied
	}
	return out
}

// IndexOf returns the position of the first item named name, or -1
func (l ItemList) IndexOf(name string) int {
	for i, item := range l {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// TotalQuantity sums the quantities of every stack in the list, saturating
// at MaxQuantity.
func (l ItemList) TotalQuantity() int {
	var total Quantity
	for _, item := range l {
		total = total.Plus(item.Quantity)
	}
	return int(total)
}
