package inventory

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

// Engine applies inventory operations to an in-memory document.
// It performs no I/O: callers load the document before Execute and save it
// afterwards when the returned mutated flag is set.
type Engine struct {
	newID   func() string
	printer *message.Printer
}

// EngineOption customizes an Engine
type EngineOption func(*Engine)

// WithIDGenerator overrides the item id generator (uuid by default)
func WithIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		e.newID = fn
	}
}

// NewEngine creates an Engine with uuid item ids and Spanish messages
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		newID:   uuid.NewString,
		printer: message.NewPrinter(language.Spanish),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddInput is an add request after defaults and numeric coercion
type AddInput struct {
	Name        string
	Description string
	Quantity    int
	Rarity      string
	Price       domain.Price
	Emoji       string
	Category    string
}

// NewAddInput resolves defaults for an add request. Malformed numbers degrade
// to defaults: quantity is floored at 1 and an unparseable price becomes 0.
func NewAddInput(req domain.Request) AddInput {
	qty, ok := req.Quantity.Int()
	if !ok || qty < 1 {
		qty = domain.DefaultQuantity
	}
	price, ok := req.Price.Price()
	if !ok {
		price = 0
	}

	return AddInput{
		Name:        domain.StringOr(req.Object, ""),
		Description: domain.StringOr(req.Description, ""),
		Quantity:    qty,
		Rarity:      domain.StringOr(req.Rarity, domain.DefaultRarity),
		Price:       price,
		Emoji:       domain.StringOr(req.Emoji, domain.DefaultEmoji),
		Category:    domain.StringOr(req.Category, domain.DefaultCategory),
	}
}

// Query selects what a get returns
type Query struct {
	Format   string
	Object   *string
	Category *string
}

// Validate rejects requests that cannot run. It is called before the
// document is loaded so invalid requests never touch storage.
func (e *Engine) Validate(req domain.Request) error {
	switch req.Type {
	case domain.OperationAdd:
		if req.Object == nil || *req.Object == "" || req.Description == nil {
			return domain.NewInventoryError(domain.ErrMissingField, domain.ErrMsgMissingAddFields)
		}
	case domain.OperationDelete:
		if req.Object == nil || *req.Object == "" {
			return domain.NewInventoryError(domain.ErrMissingField, domain.ErrMsgMissingObject)
		}
	case domain.OperationGet, domain.OperationClear:
	default:
		return domain.NewInventoryError(domain.ErrUnknownOperation, domain.ErrMsgUnknownOperation)
	}
	return nil
}

// Execute runs req against the user's list inside doc. Bot and user entries
// are created on first reference. mutated reports whether doc must be saved.
func (e *Engine) Execute(doc domain.Document, req domain.Request) (result *domain.Result, mutated bool, err error) {
	if err := e.Validate(req); err != nil {
		return nil, false, err
	}

	botID, userID := req.BotID.String(), req.UserID.String()
	items := doc.UserItems(botID, userID)

	switch req.Type {
	case domain.OperationAdd:
		items, result = e.Add(items, NewAddInput(req))
	case domain.OperationGet:
		result, err = e.Get(items, Query{Format: req.Format, Object: req.Object, Category: req.Category})
		return result, false, err
	case domain.OperationDelete:
		items, result, err = e.Delete(items, *req.Object, req.Quantity)
		if err != nil {
			return nil, false, err
		}
	case domain.OperationClear:
		items, result = e.Clear(items)
	}

	doc.SetUserItems(botID, userID, items)
	return result, true, nil
}

// Add merges in into items by exact name. An existing stack gains the
// quantity and has every other field refreshed; otherwise a new stack is
// appended with a fresh id.
func (e *Engine) Add(items domain.ItemList, in AddInput) (domain.ItemList, *domain.Result) {
	msg := domain.MsgItemAdded

	if idx := items.IndexOf(in.Name); idx >= 0 {
		item := &items[idx]
		item.Quantity = item.Quantity.Plus(domain.Quantity(in.Quantity))
		item.Rarity = in.Rarity
		item.Price = in.Price
		item.Emoji = in.Emoji
		item.Description = in.Description
		item.Category = in.Category
		msg = domain.MsgQuantityUpdated
	} else {
		items = append(items, domain.Item{
			ID:          e.newID(),
			Name:        in.Name,
			Description: in.Description,
			Quantity:    domain.Quantity(in.Quantity),
			Rarity:      in.Rarity,
			Price:       in.Price,
			Emoji:       in.Emoji,
			Category:    in.Category,
		})
	}

	return items, &domain.Result{
		Status:     domain.StatusSuccess,
		Message:    msg,
		Object:     in.Name,
		Quantity:   in.Quantity,
		Category:   in.Category,
		TotalItems: domain.Ptr(items.TotalQuantity()),
	}
}

// Get answers a read-only query. Modes are tried in order: empty inventory,
// formatted list, grouped categories, single category, "all", by name, and
// finally the full list as the default view.
func (e *Engine) Get(items domain.ItemList, q Query) (*domain.Result, error) {
	if len(items) == 0 {
		return emptyResult(q), nil
	}

	switch {
	case q.Format == domain.FormatList:
		return &domain.Result{
			Status:     domain.StatusSuccess,
			Message:    domain.MsgInventoryFormatted,
			List:       slices.Collect(DisplayLines(items)),
			TotalItems: domain.Ptr(items.TotalQuantity()),
		}, nil

	case q.Format == domain.FormatCategory && q.Category == nil:
		groups := GroupByCategory(items)
		return &domain.Result{
			Status:          domain.StatusSuccess,
			Message:         domain.MsgInventoryGrouped,
			Categories:      groups,
			TotalCategories: domain.Ptr(len(groups)),
		}, nil

	case q.Format == domain.FormatCategory:
		lines := slices.Collect(FilterCategory(items, *q.Category))
		if len(lines) == 0 {
			return nil, domain.NewInventoryError(domain.ErrCategoryNotFound,
				fmt.Sprintf(domain.ErrMsgCategoryNotFound, *q.Category))
		}
		return &domain.Result{
			Status:   domain.StatusSuccess,
			Message:  fmt.Sprintf(domain.MsgCategoryItems, *q.Category),
			Category: *q.Category,
			List:     lines,
		}, nil

	case q.Object != nil && *q.Object == domain.ObjectAll:
		return fullResult(items), nil

	case q.Object != nil:
		found := FindByName(items, *q.Object)
		if len(found) == 0 {
			return nil, domain.NewInventoryError(domain.ErrItemNotFound, domain.ErrMsgItemNotFound)
		}
		return &domain.Result{
			Status:  domain.StatusSuccess,
			Message: domain.MsgItemsFound,
			Object:  *q.Object,
			Results: found,
		}, nil
	}

	return fullResult(items), nil
}

// Delete removes or reduces the first stack named name. A missing or
// non-positive quantity removes the stack outright; an unparseable one
// counts as 1.
func (e *Engine) Delete(items domain.ItemList, name string, quantity *domain.LooseNumber) (domain.ItemList, *domain.Result, error) {
	idx := items.IndexOf(name)
	if idx < 0 {
		return items, nil, domain.NewInventoryError(domain.ErrItemNotFound, domain.ErrMsgItemNotFound)
	}

	amount, ok := quantity.Int()
	if quantity != nil && !ok {
		amount, ok = domain.DefaultQuantity, true
	}

	result := &domain.Result{Status: domain.StatusSuccess, Object: name}

	if !ok || amount <= 0 {
		result.Message = domain.MsgItemRemoved
		return slices.Delete(items, idx, idx+1), result, nil
	}

	items[idx].Quantity -= domain.Quantity(amount)
	if items[idx].Quantity <= 0 {
		result.Message = domain.MsgItemRemovedAtZero
		return slices.Delete(items, idx, idx+1), result, nil
	}

	result.Message = domain.MsgQuantityReduced
	result.Quantity = int(items[idx].Quantity)
	return items, result, nil
}

// Clear empties the list. It always succeeds and reports how many stacks
// were removed.
func (e *Engine) Clear(items domain.ItemList) (domain.ItemList, *domain.Result) {
	count := len(items)
	return domain.ItemList{}, &domain.Result{
		Status:  domain.StatusSuccess,
		Message: e.printer.Sprintf(domain.MsgInventoryCleared, count),
		Removed: domain.Ptr(count),
	}
}

// emptyResult is the placeholder for an empty inventory; the empty result
// set matches the shape the query would have produced.
func emptyResult(q Query) *domain.Result {
	result := &domain.Result{Status: domain.StatusSuccess, Message: domain.MsgInventoryEmpty}
	switch {
	case q.Format == domain.FormatList:
		result.List = []string{}
	case q.Format == domain.FormatCategory && q.Category == nil:
		result.Categories = map[string][]string{}
		result.TotalCategories = domain.Ptr(0)
	case q.Format == domain.FormatCategory:
		result.List = []string{}
	default:
		result.Inventory = domain.ItemList{}
	}
	return result
}

func fullResult(items domain.ItemList) *domain.Result {
	return &domain.Result{
		Status:     domain.StatusSuccess,
		Message:    domain.MsgInventoryFull,
		Inventory:  slices.Clone(items),
		TotalItems: domain.Ptr(items.TotalQuantity()),
	}
}
