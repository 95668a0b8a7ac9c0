package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, userID int64) (domain.Cart, error)
	// SaveCart replaces the stored entries and total of cart.ID.
	SaveCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
}
