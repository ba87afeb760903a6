package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// TableContext identifies the table the cart is bound to
type TableContext struct {
	Number int
	Area   models.Area
}

// Totals is the derived money summary of a set of cart lines
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CartService composes the order being built. It owns the transient editing
// session: the working lines, notes, bound table, and (when adding to an
// existing order) the set of line ids that were already on that order.
type CartService struct {
	store *store.Store
	log   zerolog.Logger

	items           []models.OrderItem
	notes           string
	table           *TableContext
	editing         *models.Order
	originalItemIDs map[string]struct{}
}

// NewCartService creates a new cart service
func NewCartService(st *store.Store, logger zerolog.Logger) *CartService {
	return &CartService{
		store:           st,
		log:             logger.With().Str("service", "cart").Logger(),
		originalItemIDs: map[string]struct{}{},
	}
}

// AddToCart adds a customized menu item to the cart. Two additions with the
// same menu item, the same selections, and the same removed ingredients merge
// into one line regardless of insertion order; anything else appends a new
// line priced at base + selected modifiers.
func (s *CartService) AddToCart(item models.MenuItem, customizations map[string]models.Selection, removedIngredients []string, quantity int) []models.OrderItem {
	if quantity < 1 {
		quantity = 1
	}

	signature := lineSignature(item.ID, customizations, removedIngredients)
	for i := range s.items {
		if _, original := s.originalItemIDs[s.items[i].ID]; original {
			continue
		}
		if lineSignature(s.items[i].MenuItem.ID, s.items[i].Customizations, s.items[i].RemovedIngredients) == signature {
			s.items[i].Quantity += quantity
			s.log.Debug().Str("item", item.Name).Int("quantity", s.items[i].Quantity).Msg("merged cart line")
			return s.items
		}
	}

	unitPrice := item.Price
	for _, sel := range customizations {
		unitPrice += sel.PriceModifier()
	}

	line := models.OrderItem{
		ID:                 fmt.Sprintf("item-%s", uuid.NewString()),
		MenuItem:           item,
		Quantity:           quantity,
		Customizations:     customizations,
		RemovedIngredients: removedIngredients,
		UnitPrice:          unitPrice,
		CreatedAt:          time.Now(),
	}
	s.items = append(s.items, line)
	s.log.Debug().Str("item", item.Name).Float64("unit_price", unitPrice).Msg("added cart line")
	return s.items
}

// UpdateQuantity sets a line's quantity; anything below 1 removes the line
func (s *CartService) UpdateQuantity(lineID string, quantity int) []models.OrderItem {
	if quantity < 1 {
		return s.RemoveItem(lineID)
	}
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.items
}

// UpdateDiscount sets a line's percentage discount, clamped to [0,100]
func (s *CartService) UpdateDiscount(lineID string, discount float64) []models.OrderItem {
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Discount = discount
			break
		}
	}
	return s.items
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(lineID string) []models.OrderItem {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != lineID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.items
}

// SetNotes replaces the free-text notes for the order being built
func (s *CartService) SetNotes(notes string) {
	s.notes = notes
}

// Items returns the current cart lines
func (s *CartService) Items() []models.OrderItem {
	return s.items
}

// Notes returns the current cart notes
func (s *CartService) Notes() string {
	return s.notes
}

// Empty reports whether the cart has no lines
func (s *CartService) Empty() bool {
	return len(s.items) == 0
}

// Table returns the table context the cart is bound to, if any
func (s *CartService) Table() *TableContext {
	return s.table
}

// BindTable binds the cart to a table
func (s *CartService) BindTable(number int, area models.Area) {
	s.table = &TableContext{Number: number, Area: area}
}

// Editing returns the order currently under edit, if any
func (s *CartService) Editing() *models.Order {
	return s.editing
}

// BeginEdit loads an existing order's items and notes into the cart and
// remembers which line ids were already on the order, so a later submit does
// not decrement stock for them again.
func (s *CartService) BeginEdit(order models.Order) {
	s.editing = &order
	s.items = append([]models.OrderItem{}, order.Items...)
	s.notes = order.Notes
	s.originalItemIDs = make(map[string]struct{}, len(order.Items))
	for _, item := range order.Items {
		s.originalItemIDs[item.ID] = struct{}{}
	}
}

// IsOriginal reports whether a line id was already on the order under edit
func (s *CartService) IsOriginal(lineID string) bool {
	_, ok := s.originalItemIDs[lineID]
	return ok
}

// Load replaces the cart contents, used when resuming a held order
func (s *CartService) Load(items []models.OrderItem, notes string) {
	s.items = append([]models.OrderItem{}, items...)
	s.notes = notes
}

// Reset discards the cart and its editing context. Always safe; nothing
// persisted changes.
func (s *CartService) Reset() {
	s.items = nil
	s.notes = ""
	s.table = nil
	s.editing = nil
	s.originalItemIDs = map[string]struct{}{}
}

// Totals computes the cart's money summary at the configured tax rate
func (s *CartService) Totals(taxRate float64) Totals {
	return ComputeTotals(s.items, taxRate)
}

// ComputeTotals derives subtotal, tax, and total for a set of lines. Pure:
// the result depends only on the lines and rate, so it can be recomputed at
// any time.
func ComputeTotals(items []models.OrderItem, taxRate float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * (1 - item.Discount/100) * float64(item.Quantity)
	}
	tax := subtotal * taxRate
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// lineSignature builds the deterministic key deciding whether two additions
// are the same purchasable line: menu item id, sorted category:option pairs,
// sorted removed ingredients.
func lineSignature(menuItemID string, customizations map[string]models.Selection, removedIngredients []string) string {
	catIDs := make([]string, 0, len(customizations))
	for id := range customizations {
		catIDs = append(catIDs, id)
	}
	sort.Strings(catIDs)

	parts := make([]string, 0, len(catIDs))
	for _, id := range catIDs {
		sel := customizations[id]
		switch {
		case sel.Single != nil:
			parts = append(parts, id+":"+sel.Single.ID)
		case len(sel.Multi) > 0:
			optIDs := make([]string, len(sel.Multi))
			for i, opt := range sel.Multi {
				optIDs[i] = opt.ID
			}
			sort.Strings(optIDs)
			parts = append(parts, id+":"+strings.Join(optIDs, ","))
		}
	}

	removed := append([]string{}, removedIngredients...)
	sort.Strings(removed)

	return menuItemID + "|" + strings.Join(parts, ";") + "|" + strings.Join(removed, ",")
}
