package main

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nikolayk812/storefront"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pool, err := newPool(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not connect to postgres", zap.Error(err))
			}
			defer pool.Close()

			sqlDB := stdlib.OpenDBFromPool(pool)
			defer sqlDB.Close()

			goose.SetBaseFS(storefront.Migrations)

			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate postgres", zap.Error(err))
			}

			logger.Info(ctx, "database migrated")
		},
	}
}
