package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 7
	// bcrypt only hashes the first 72 bytes and rejects longer input.
	maxPasswordLength = 72
)

type User struct {
	users port.UserRepository
	cost  int
}

// NewUser builds the user service. A zero cost means bcrypt.DefaultCost.
func NewUser(users port.UserRepository, cost int) *User {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &User{users: users, cost: cost}
}

// Create registers username with a bcrypt hash of password. The new user starts with an empty cart.
func (s *User) Create(ctx context.Context, username, password string) (domain.User, error) {
	if username == "" {
		return domain.User{}, domain.ErrEmptyUsername
	}
	if len(password) < minPasswordLength {
		return domain.User{}, domain.ErrWeakPassword
	}
	if len(password) > maxPasswordLength {
		return domain.User{}, domain.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		return domain.User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	logger.Info(ctx, "user created", zap.String("username", username), zap.Int64("user_id", user.ID))

	return user, nil
}

func (s *User) ByUsername(ctx context.Context, username string) (domain.User, error) {
	return findUser(ctx, s.users, username)
}
