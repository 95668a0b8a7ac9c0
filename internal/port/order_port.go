package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	AppendOrder(ctx context.Context, order domain.UserOrder) (domain.UserOrder, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.UserOrder, error)
}
