package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type Order struct {
	users  port.UserRepository
	carts  port.CartRepository
	orders port.OrderRepository
	locks  *Locks
	now    func() time.Time
}

func NewOrder(users port.UserRepository, carts port.CartRepository, orders port.OrderRepository, locks *Locks) *Order {
	return &Order{
		users:  users,
		carts:  carts,
		orders: orders,
		locks:  orNewLocks(locks),
		now:    time.Now,
	}
}

// Submit turns the user's current cart into a new order. The cart keeps its items.
func (s *Order) Submit(ctx context.Context, username string) (domain.UserOrder, error) {
	unlock := s.locks.lock(username)
	defer unlock()

	user, err := findUser(ctx, s.users, username)
	if err != nil {
		return domain.UserOrder{}, err
	}

	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return domain.UserOrder{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	order := domain.NewOrderFromCart(cart, s.now().UTC())

	saved, err := s.orders.AppendOrder(ctx, order)
	if err != nil {
		return domain.UserOrder{}, fmt.Errorf("orders.AppendOrder: %w", err)
	}

	logger.Info(ctx, "order submitted",
		zap.String("username", username),
		zap.Stringer("order_id", saved.ID),
		zap.Int("items", len(saved.Items)),
		zap.Stringer("total", saved.Total))

	return saved, nil
}

// OrdersForUser lists the user's orders in the order they were submitted.
// A user without orders gets an empty, non-nil slice.
func (s *Order) OrdersForUser(ctx context.Context, username string) ([]domain.UserOrder, error) {
	user, err := findUser(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("orders.FindByUser: %w", err)
	}
	if orders == nil {
		orders = []domain.UserOrder{}
	}

	return orders, nil
}
