package domain

import (
	"fmt"
	"slices"
)

// Limits on cart size. Every unit is a separate entry, so an unbounded
// quantity would grow the cart, the stored rows and the response without limit.
const (
	MaxQuantity    = 100
	MaxCartEntries = 1000
)

// Cart holds one entry per unit: two units of an item are two entries in Items.
type Cart struct {
	ID     int64
	UserID int64
	Items  []Item
	Total  Money
}

// Add appends quantity copies of item and recomputes the total.
// The cart is left unchanged when it returns an error.
func (c *Cart) Add(item Item, quantity int) error {
	if quantity <= 0 || quantity > MaxQuantity {
		return fmt.Errorf("quantity[%d] outside 1..%d: %w", quantity, MaxQuantity, ErrInvalidQuantity)
	}
	if len(c.Items)+quantity > MaxCartEntries {
		return fmt.Errorf("cart would hold %d entries, limit %d: %w",
			len(c.Items)+quantity, MaxCartEntries, ErrInvalidQuantity)
	}

	items := make([]Item, len(c.Items), len(c.Items)+quantity)
	copy(items, c.Items)
	for range quantity {
		items = append(items, item)
	}

	return c.replace(items)
}

// Remove drops up to quantity entries matching itemID, earliest first,
// and returns how many were removed. Asking for more than the cart holds
// removes what is there without failing.
func (c *Cart) Remove(itemID int64, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	removed := 0
	items := slices.DeleteFunc(slices.Clone(c.Items), func(it Item) bool {
		if removed < quantity && it.ID == itemID {
			removed++
			return true
		}
		return false
	})

	if err := c.replace(items); err != nil {
		return 0, err
	}

	return removed, nil
}

// Recalculate sets Total to the sum of all entry prices.
func (c *Cart) Recalculate() error {
	return c.replace(c.Items)
}

func (c *Cart) replace(items []Item) error {
	total, err := SumPrices(items)
	if err != nil {
		return fmt.Errorf("SumPrices: %w", err)
	}

	c.Items = items
	c.Total = total
	return nil
}

// Count returns how many entries reference itemID.
func (c *Cart) Count(itemID int64) int {
	n := 0
	for _, it := range c.Items {
		if it.ID == itemID {
			n++
		}
	}
	return n
}

func SumPrices(items []Item) (Money, error) {
	if len(items) == 0 {
		return ZeroMoney(DefaultCurrency), nil
	}

	total := ZeroMoney(items[0].Price.Currency)
	for _, it := range items {
		var err error
		total, err = total.Add(it.Price)
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}
