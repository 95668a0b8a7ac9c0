package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type UserRepository interface {
	// FindByUsername returns nil, nil when no user has that username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateUser stores the user together with its empty cart.
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)
}
