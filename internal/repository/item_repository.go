package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type itemRepository struct {
	q *db.Queries
}

func NewItem(pool *pgxpool.Pool) port.ItemRepository {
	return &itemRepository{q: db.New(pool)}
}

func (r *itemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListItems: %w", err)
	}

	return mapItemRowsToDomain(rows)
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	row, err := r.q.GetItem(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetItem: %w", err)
	}

	item, err := mapItem(row.ID, row.Name, row.PriceAmount, row.PriceCurrency, row.Description)
	if err != nil {
		return nil, fmt.Errorf("mapItem: %w", err)
	}

	return &item, nil
}

func (r *itemRepository) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	rows, err := r.q.FindItemsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("q.FindItemsByName: %w", err)
	}

	return mapItemRowsToDomain(rows)
}

func mapItemRowsToDomain(rows []db.Item) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(rows))

	for _, row := range rows {
		item, err := mapItem(row.ID, row.Name, row.PriceAmount, row.PriceCurrency, row.Description)
		if err != nil {
			return nil, fmt.Errorf("mapItem: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
