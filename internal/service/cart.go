package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type Cart struct {
	users port.UserRepository
	items port.ItemRepository
	carts port.CartRepository
	locks *Locks
}

func NewCart(users port.UserRepository, items port.ItemRepository, carts port.CartRepository, locks *Locks) *Cart {
	return &Cart{
		users: users,
		items: items,
		carts: carts,
		locks: orNewLocks(locks),
	}
}

// AddToCart appends quantity units of itemID to the user's cart.
func (s *Cart) AddToCart(ctx context.Context, username string, itemID int64, quantity int) (domain.Cart, error) {
	return s.modify(ctx, username, itemID, func(cart *domain.Cart, item domain.Item) error {
		return cart.Add(item, quantity)
	})
}

// RemoveFromCart drops up to quantity units of itemID from the user's cart.
// Removing more units than the cart holds leaves no units of that item and is not an error.
func (s *Cart) RemoveFromCart(ctx context.Context, username string, itemID int64, quantity int) (domain.Cart, error) {
	return s.modify(ctx, username, itemID, func(cart *domain.Cart, item domain.Item) error {
		removed, err := cart.Remove(item.ID, quantity)
		if err != nil {
			return err
		}
		if removed < quantity {
			logger.Debug(ctx, "removed fewer units than requested",
				zap.Int("requested", quantity), zap.Int("removed", removed))
		}
		return nil
	})
}

func (s *Cart) modify(ctx context.Context, username string, itemID int64,
	fn func(cart *domain.Cart, item domain.Item) error) (domain.Cart, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	user, err := findUser(ctx, s.users, username)
	if err != nil {
		return domain.Cart{}, err
	}

	item, err := findItem(ctx, s.items, itemID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	if err := fn(&cart, item); err != nil {
		return domain.Cart{}, err
	}

	saved, err := s.carts.SaveCart(ctx, cart)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.SaveCart: %w", err)
	}

	logger.Debug(ctx, "cart updated",
		zap.String("username", username),
		zap.Int64("item_id", itemID),
		zap.Int("entries", len(saved.Items)),
		zap.Stringer("total", saved.Total))

	return saved, nil
}
