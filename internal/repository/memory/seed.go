package memory

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// SeedItems mirrors the catalog inserted by the seed migration.
func SeedItems() []domain.Item {
	return []domain.Item{
		{
			ID:          1,
			Name:        "Round Widget",
			Price:       domain.Money{Amount: decimal.RequireFromString("2.99"), Currency: domain.DefaultCurrency},
			Description: "A widget that is round",
		},
		{
			ID:          2,
			Name:        "Square Widget",
			Price:       domain.Money{Amount: decimal.RequireFromString("1.99"), Currency: domain.DefaultCurrency},
			Description: "A widget that is square",
		},
	}
}
