package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/repository/memory"
)

type stores struct {
	users  port.UserRepository
	items  port.ItemRepository
	carts  port.CartRepository
	orders port.OrderRepository
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.Database.MaxConnections) //nolint: gosec
	poolCfg.MinConns = int32(cfg.Database.MinConnections) //nolint: gosec
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	poolCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

// openStores picks the storage driver from config. The returned func releases it.
func openStores(ctx context.Context, cfg *config.Config) (stores, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.New(memory.SeedItems()...)
		return stores{users: store, items: store, carts: store, orders: store}, func() {}, nil
	}

	pool, err := newPool(ctx, cfg)
	if err != nil {
		return stores{}, nil, err
	}

	closePool := func() {
		logger.Info(ctx, "closing postgres pool...")
		pool.Close()
	}

	return stores{
		users:  repository.NewUser(pool),
		items:  repository.NewItem(pool),
		carts:  repository.NewCart(pool),
		orders: repository.NewOrder(pool),
	}, closePool, nil
}
