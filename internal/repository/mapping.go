package repository

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func mapMoney(amount decimal.Decimal, code string) (domain.Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: amount, Currency: unit}, nil
}

func mapItem(id int64, name string, amount decimal.Decimal, code, description string) (domain.Item, error) {
	price, err := mapMoney(amount, code)
	if err != nil {
		return domain.Item{}, fmt.Errorf("item[%d]: %w", id, err)
	}

	return domain.Item{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
	}, nil
}
