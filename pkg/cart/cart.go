// Package cart holds the client-side order state: an insertion-ordered
// list of item lines with derived total and count. It is driven from a
// single UI goroutine and is not safe for concurrent use.
package cart

import (
	"Bomb-Kitchen-Backend/domain"
	"Bomb-Kitchen-Backend/pkg/localstore"
)

const storageKey = "cart"

type (
	// CartItem is an item snapshot plus its quantity; quantity is always
	// positive for a line present in the cart.
	CartItem struct {
		domain.ItemResponse
		Quantity int `json:"quantity"`
	}

	// Notifier receives the "added to order" signal. Only the first
	// addition of a given item fires it; increments stay silent.
	Notifier interface {
		ItemAdded(item domain.ItemResponse)
	}

	Cart struct {
		items    []CartItem
		isOpen   bool
		store    localstore.Store
		notifier Notifier
	}
)

// New rehydrates the cart from the store. Missing or corrupt state yields
// an empty cart. Both store and notifier may be nil.
func New(store localstore.Store, notifier Notifier) *Cart {
	c := &Cart{store: store, notifier: notifier}
	if store != nil {
		var saved []CartItem
		if store.Load(storageKey, &saved) {
			c.items = saved
		}
	}
	return c
}

func (c *Cart) AddToCart(item domain.ItemResponse) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}

	c.items = append(c.items, CartItem{ItemResponse: item, Quantity: 1})
	if c.notifier != nil {
		c.notifier.ItemAdded(item)
	}
	c.persist()
}

// UpdateQuantity adjusts a line by delta, clamped at zero; a line reaching
// zero disappears. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(itemID, delta int) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		quantity := c.items[i].Quantity + delta
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		c.persist()
		return
	}
}

func (c *Cart) RemoveFromCart(itemID int) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
	c.persist()
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the order sum in the smallest currency unit.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.items {
		total += line.Price * line.Quantity
	}
	return total
}

func (c *Cart) Count() int {
	count := 0
	for _, line := range c.items {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsOpen() bool {
	return c.isOpen
}

func (c *Cart) SetOpen(open bool) {
	c.isOpen = open
}

// persist is fire-and-forget; a failed write is not retried and never
// surfaces to the user.
func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	_ = c.store.Save(storageKey, c.items)
}
