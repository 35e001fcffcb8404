// Package cart implements the client-side shopping cart: a mapping from
// product id to quantity, hydrated from a durable store at construction
// and written back on every mutation. Nothing here talks to the server;
// the cart is discarded (cleared) only after a successful checkout.
//
// A Cart is used from a single goroutine, matching the one execution
// context it models. Store writes are fire-and-forget: failures are
// logged and never surfaced to the caller.
package cart

import (
	"encoding/json"
	"log"
	"sort"
)

// StorageKey is the fixed key the serialized cart lives under.
const StorageKey = "pet-cheap-cart"

// Item is one serialized cart line.
type Item struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Store persists the serialized cart blob. Load reports absence with the
// second return; Save is best-effort.
type Store interface {
	Load(key string) ([]byte, bool)
	Save(key string, data []byte) error
}

type Cart struct {
	store Store
	items map[string]int
}

// New hydrates a cart from the store. Missing or corrupt data falls back
// to an empty cart; New never fails.
func New(store Store) *Cart {
	c := &Cart{store: store, items: make(map[string]int)}
	data, ok := store.Load(StorageKey)
	if !ok {
		return c
	}
	var stored []Item
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Printf("cart: ignoring corrupt stored cart: %v", err)
		return c
	}
	for _, it := range stored {
		if it.ID != "" && it.Quantity > 0 {
			c.items[it.ID] = it.Quantity
		}
	}
	return c
}

// AddItem adds quantity of a product, accumulating with any existing
// entry for the same id.
func (c *Cart) AddItem(productID string, quantity int) {
	c.items[productID] += quantity
	c.persist()
}

// RemoveItem deletes the entry if present; no-op otherwise.
func (c *Cart) RemoveItem(productID string) {
	delete(c.items, productID)
	c.persist()
}

// UpdateQuantity overwrites the entry's quantity. A quantity of zero or
// less removes the entry.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.items[productID] = quantity
	c.persist()
}

func (c *Cart) Clear() {
	c.items = make(map[string]int)
	c.persist()
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, q := range c.items {
		total += q
	}
	return total
}

// Quantity returns the quantity for a product, zero if absent.
func (c *Cart) Quantity(productID string) int {
	return c.items[productID]
}

// Items returns the cart lines sorted by product id.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for id, q := range c.items {
		out = append(out, Item{ID: id, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Cart) persist() {
	data, err := json.Marshal(c.Items())
	if err != nil {
		log.Printf("cart: serialize: %v", err)
		return
	}
	if err := c.store.Save(StorageKey, data); err != nil {
		log.Printf("cart: persist: %v", err)
	}
}
