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

type cartRepository struct {
	q    *db.Queries
	conn conn
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		conn: pool,
	}
}

// NewCartWithTx reads and writes through tx. SaveCart runs in a savepoint of it.
func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		conn: tx,
	}
}

func (r *cartRepository) GetCart(ctx context.Context, userID int64) (domain.Cart, error) {
	return getCart(ctx, r.q, userID)
}

// SaveCart rewrites the entries of cart.ID in their current order and stores the total.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	return withTx(ctx, r.conn, func(q *db.Queries) (domain.Cart, error) {
		affected, err := q.UpdateCartTotal(ctx, db.UpdateCartTotalParams{
			ID:            cart.ID,
			TotalAmount:   cart.Total.Amount,
			TotalCurrency: cart.Total.Currency.String(),
		})
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.UpdateCartTotal: %w", err)
		}
		if affected == 0 {
			return domain.Cart{}, fmt.Errorf("cart[%d] does not exist", cart.ID)
		}

		if err := q.DeleteCartItems(ctx, cart.ID); err != nil {
			return domain.Cart{}, fmt.Errorf("q.DeleteCartItems: %w", err)
		}

		if len(cart.Items) > 0 {
			ids := make([]int64, 0, len(cart.Items))
			for _, it := range cart.Items {
				ids = append(ids, it.ID)
			}

			if err := q.InsertCartItems(ctx, db.InsertCartItemsParams{CartID: cart.ID, ItemIds: ids}); err != nil {
				return domain.Cart{}, fmt.Errorf("q.InsertCartItems: %w", err)
			}
		}

		return getCart(ctx, q, cart.UserID)
	})
}

func getCart(ctx context.Context, q *db.Queries, userID int64) (domain.Cart, error) {
	row, err := q.GetCartByUser(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, fmt.Errorf("cart of user[%d]: %w", userID, domain.ErrUserNotFound)
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCartByUser: %w", err)
	}

	total, err := mapMoney(row.TotalAmount, row.TotalCurrency)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapMoney: %w", err)
	}

	dbCartItems, err := q.GetCartItems(ctx, row.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCartItems: %w", err)
	}

	items, err := mapGetCartItemsRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartItemsRowsToDomain: %w", err)
	}

	return domain.Cart{
		ID:     row.ID,
		UserID: row.UserID,
		Items:  items,
		Total:  total,
	}, nil
}

func mapGetCartItemsRowsToDomain(rows []db.GetCartItemsRow) ([]domain.Item, error) {
	var items []domain.Item

	for _, row := range rows {
		item, err := mapItem(row.ID, row.Name, row.PriceAmount, row.PriceCurrency, row.Description)
		if err != nil {
			return nil, fmt.Errorf("mapItem: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
