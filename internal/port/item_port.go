package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type ItemRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
	// FindByID returns nil, nil when the item does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
}
