// Package service holds the storefront use cases: cart mutation, order
// submission, catalog lookups and user registration. Storage is reached only
// through the port interfaces.
package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

func findUser(ctx context.Context, users port.UserRepository, username string) (domain.User, error) {
	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.FindByUsername: %w", err)
	}
	if user == nil {
		return domain.User{}, fmt.Errorf("username[%s]: %w", username, domain.ErrUserNotFound)
	}

	return *user, nil
}

func findItem(ctx context.Context, items port.ItemRepository, itemID int64) (domain.Item, error) {
	item, err := items.FindByID(ctx, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("items.FindByID: %w", err)
	}
	if item == nil {
		return domain.Item{}, fmt.Errorf("itemID[%d]: %w", itemID, domain.ErrItemNotFound)
	}

	return *item, nil
}
