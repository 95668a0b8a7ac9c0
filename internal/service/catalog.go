package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type Catalog struct {
	items port.ItemRepository
}

func NewCatalog(items port.ItemRepository) *Catalog {
	return &Catalog{items: items}
}

func (s *Catalog) Items(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("items.FindAll: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}

	return items, nil
}

func (s *Catalog) Item(ctx context.Context, id int64) (domain.Item, error) {
	return findItem(ctx, s.items, id)
}

// ItemsByName returns ErrItemNotFound when no item carries exactly that name.
func (s *Catalog) ItemsByName(ctx context.Context, name string) ([]domain.Item, error) {
	items, err := s.items.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("items.FindByName: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("name[%s]: %w", name, domain.ErrItemNotFound)
	}

	return items, nil
}
