package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserOrder is an immutable snapshot of a cart taken at submission time.
type UserOrder struct {
	ID     uuid.UUID
	UserID int64
	Items  []Item
	Total  Money

	CreatedAt time.Time
}

// NewOrderFromCart copies the cart entries so later cart edits never reach the order.
// The total is taken from the cart as is.
func NewOrderFromCart(cart Cart, now time.Time) UserOrder {
	items := slices.Clone(cart.Items)
	if items == nil {
		items = []Item{}
	}

	return UserOrder{
		ID:        uuid.New(),
		UserID:    cart.UserID,
		Items:     items,
		Total:     cart.Total,
		CreatedAt: now,
	}
}
