package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func createUserCommand(cfg *config.Config) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Creates a user with an empty cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if cfg.Storage.Driver == config.StorageDriverMemory {
				return errors.New("create-user needs the postgres storage driver")
			}

			s, closeStores, err := openStores(ctx, cfg)
			if err != nil {
				return fmt.Errorf("openStores: %w", err)
			}
			defer closeStores()

			user, err := service.NewUser(s.users, bcrypt.DefaultCost).Create(ctx, username, password)
			if err != nil {
				return fmt.Errorf("users.Create: %w", err)
			}

			logger.Info(ctx, "user ready", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password, at least 7 characters")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
