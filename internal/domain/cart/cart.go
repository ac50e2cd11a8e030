package cart

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxQuantity = 99

var (
	ErrInvalidQuantity = errs.NewCategorized("quantity must be between 1 and 99", errs.ErrValidation)
	ErrItemNotFound    = errs.NewCategorized("cart item not found", errs.ErrNotFound)
	ErrBundleInactive  = errs.NewCategorized("bundle is not available", errs.ErrValidation)
)

// Item is one cart row. The same product may appear once standalone and once per bundle.
type Item struct {
	ProductID uuid.UUID
	BundleID  *uuid.UUID
	Quantity  int
}

func (i Item) sameKey(productID uuid.UUID, bundleID *uuid.UUID) bool {
	if i.ProductID != productID {
		return false
	}
	if i.BundleID == nil || bundleID == nil {
		return i.BundleID == nil && bundleID == nil
	}
	return *i.BundleID == *bundleID
}

type Cart struct {
	userID uuid.UUID
	items  []Item
}

func New(userID uuid.UUID, items []Item) *Cart {
	return &Cart{userID: userID, items: items}
}

func (c *Cart) UserID() uuid.UUID { return c.userID }
func (c *Cart) Items() []Item     { return c.items }
func (c *Cart) IsEmpty() bool     { return len(c.items) == 0 }

func (c *Cart) find(productID uuid.UUID, bundleID *uuid.UUID) int {
	for i, it := range c.items {
		if it.sameKey(productID, bundleID) {
			return i
		}
	}
	return -1
}

// Add merges qty into an existing row; the merged quantity is capped at MaxQuantity.
func (c *Cart) Add(productID uuid.UUID, bundleID *uuid.UUID, qty int) (Item, error) {
	if qty < 1 || qty > MaxQuantity {
		return Item{}, ErrInvalidQuantity
	}
	if idx := c.find(productID, bundleID); idx >= 0 {
		merged := c.items[idx].Quantity + qty
		if merged > MaxQuantity {
			merged = MaxQuantity
		}
		c.items[idx].Quantity = merged
		return c.items[idx], nil
	}
	item := Item{ProductID: productID, BundleID: bundleID, Quantity: qty}
	c.items = append(c.items, item)
	return item, nil
}

// SetQuantity overwrites the row; zero removes it and reports removed=true.
func (c *Cart) SetQuantity(productID uuid.UUID, bundleID *uuid.UUID, qty int) (item Item, removed bool, err error) {
	if qty < 0 || qty > MaxQuantity {
		return Item{}, false, ErrInvalidQuantity
	}
	idx := c.find(productID, bundleID)
	if idx < 0 {
		return Item{}, false, ErrItemNotFound
	}
	if qty == 0 {
		item = c.items[idx]
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return item, true, nil
	}
	c.items[idx].Quantity = qty
	return c.items[idx], false, nil
}

func (c *Cart) Remove(productID uuid.UUID, bundleID *uuid.UUID) error {
	idx := c.find(productID, bundleID)
	if idx < 0 {
		return ErrItemNotFound
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

// AddBundle adds qty of every member product tagged with the bundle id.
func (c *Cart) AddBundle(b *catalog.Bundle, qty int) ([]Item, error) {
	if !b.Active() {
		return nil, ErrBundleInactive
	}
	bundleID := b.ID()
	added := make([]Item, 0, len(b.ProductIDs()))
	for _, productID := range b.ProductIDs() {
		item, err := c.Add(productID, &bundleID, qty)
		if err != nil {
			return nil, err
		}
		added = append(added, item)
	}
	return added, nil
}

// RemoveBundle drops every row of the bundle and returns them.
func (c *Cart) RemoveBundle(bundleID uuid.UUID) []Item {
	var removed []Item
	kept := c.items[:0]
	for _, it := range c.items {
		if it.BundleID != nil && *it.BundleID == bundleID {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	return removed
}

func (c *Cart) Clear() {
	c.items = nil
}
