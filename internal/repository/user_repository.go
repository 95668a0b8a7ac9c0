package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type userRepository struct {
	q    *db.Queries
	conn conn
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q:    db.New(pool),
		conn: pool,
	}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row, err := r.q.FindUserByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("q.FindUserByUsername: %w", err)
	}

	return &domain.User{
		ID:       row.ID,
		Username: row.Username,
		Password: row.PasswordHash,
	}, nil
}

func (r *userRepository) CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error) {
	if username == "" {
		return domain.User{}, domain.ErrEmptyUsername
	}

	return withTx(ctx, r.conn, func(q *db.Queries) (domain.User, error) {
		row, err := q.CreateUser(ctx, db.CreateUserParams{
			Username:     username,
			PasswordHash: passwordHash,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.User{}, fmt.Errorf("username[%s]: %w", username, domain.ErrUsernameTaken)
			}
			return domain.User{}, fmt.Errorf("q.CreateUser: %w", err)
		}

		_, err = q.CreateCart(ctx, db.CreateCartParams{
			UserID:        row.ID,
			TotalCurrency: domain.DefaultCurrency.String(),
		})
		if err != nil {
			return domain.User{}, fmt.Errorf("q.CreateCart: %w", err)
		}

		return domain.User{
			ID:       row.ID,
			Username: row.Username,
			Password: row.PasswordHash,
		}, nil
	})
}
