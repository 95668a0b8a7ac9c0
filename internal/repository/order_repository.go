package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	conn conn
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		conn: pool,
	}
}

func (r *orderRepository) AppendOrder(ctx context.Context, order domain.UserOrder) (domain.UserOrder, error) {
	if order.ID == uuid.Nil {
		return domain.UserOrder{}, fmt.Errorf("order ID is empty")
	}

	return withTx(ctx, r.conn, func(q *db.Queries) (domain.UserOrder, error) {
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			ID:            order.ID,
			UserID:        order.UserID,
			TotalAmount:   order.Total.Amount,
			TotalCurrency: order.Total.Currency.String(),
			CreatedAt:     order.CreatedAt,
		})
		if err != nil {
			return domain.UserOrder{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, it := range order.Items {
			err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
				OrderID:       order.ID,
				Position:      int32(i), //nolint: gosec
				ItemID:        it.ID,
				Name:          it.Name,
				PriceAmount:   it.Price.Amount,
				PriceCurrency: it.Price.Currency.String(),
				Description:   it.Description,
			})
			if err != nil {
				return domain.UserOrder{}, fmt.Errorf("q.InsertOrderItem: %w", err)
			}
		}

		return order, nil
	})
}

func (r *orderRepository) FindByUser(ctx context.Context, userID int64) ([]domain.UserOrder, error) {
	orderRows, err := r.q.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByUser: %w", err)
	}

	itemRows, err := r.q.ListOrderItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrderItemsByUser: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]domain.Item, len(orderRows))
	for _, row := range itemRows {
		item, err := mapItem(row.ItemID, row.Name, row.PriceAmount, row.PriceCurrency, row.Description)
		if err != nil {
			return nil, fmt.Errorf("mapItem: %w", err)
		}
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], item)
	}

	orders := make([]domain.UserOrder, 0, len(orderRows))
	for _, row := range orderRows {
		total, err := mapMoney(row.TotalAmount, row.TotalCurrency)
		if err != nil {
			return nil, fmt.Errorf("mapMoney: %w", err)
		}

		items := itemsByOrder[row.ID]
		if items == nil {
			items = []domain.Item{}
		}

		orders = append(orders, domain.UserOrder{
			ID:        row.ID,
			UserID:    row.UserID,
			Items:     items,
			Total:     total,
			CreatedAt: row.CreatedAt,
		})
	}

	return orders, nil
}
