// Package memory implements the storage ports in process memory.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

var (
	_ port.UserRepository  = (*Store)(nil)
	_ port.ItemRepository  = (*Store)(nil)
	_ port.CartRepository  = (*Store)(nil)
	_ port.OrderRepository = (*Store)(nil)
)

// Store keeps users, items, carts and orders in maps.
// Values are copied on the way in and out so callers never share slices with it.
type Store struct {
	mu sync.RWMutex

	users      map[string]domain.User
	items      map[int64]domain.Item
	carts      map[int64]domain.Cart // by user ID
	orders     []domain.UserOrder
	lastUserID int64
	lastCartID int64
}

func New(items ...domain.Item) *Store {
	s := &Store{
		users: make(map[string]domain.User),
		items: make(map[int64]domain.Item),
		carts: make(map[int64]domain.Cart),
	}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *Store) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) CreateUser(_ context.Context, username, passwordHash string) (domain.User, error) {
	if username == "" {
		return domain.User{}, domain.ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return domain.User{}, fmt.Errorf("username[%s]: %w", username, domain.ErrUsernameTaken)
	}

	s.lastUserID++
	s.lastCartID++
	u := domain.User{ID: s.lastUserID, Username: username, Password: passwordHash}
	s.users[username] = u
	s.carts[u.ID] = domain.Cart{
		ID:     s.lastCartID,
		UserID: u.ID,
		Total:  domain.ZeroMoney(domain.DefaultCurrency),
	}

	return u, nil
}

func (s *Store) FindAll(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b domain.Item) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *Store) FindByID(_ context.Context, id int64) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (s *Store) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	all, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(all, func(it domain.Item) bool { return it.Name != name }), nil
}

func (s *Store) GetCart(_ context.Context, userID int64) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[userID]
	if !ok {
		return domain.Cart{}, fmt.Errorf("cart of user[%d]: %w", userID, domain.ErrUserNotFound)
	}
	c.Items = slices.Clone(c.Items)
	return c, nil
}

func (s *Store) SaveCart(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.carts[cart.UserID]
	if !ok || stored.ID != cart.ID {
		return domain.Cart{}, fmt.Errorf("cart[%d] of user[%d] does not exist", cart.ID, cart.UserID)
	}

	cart.Items = slices.Clone(cart.Items)
	s.carts[cart.UserID] = cart

	cart.Items = slices.Clone(cart.Items)
	return cart, nil
}

func (s *Store) AppendOrder(_ context.Context, order domain.UserOrder) (domain.UserOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.Items = slices.Clone(order.Items)
	s.orders = append(s.orders, order)

	order.Items = slices.Clone(order.Items)
	return order, nil
}

func (s *Store) FindByUser(_ context.Context, userID int64) ([]domain.UserOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.UserOrder{}
	for _, o := range s.orders {
		if o.UserID == userID {
			o.Items = slices.Clone(o.Items)
			out = append(out, o)
		}
	}
	return out, nil
}
