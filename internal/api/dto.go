package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type cartRequest struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type createUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type itemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type cartDTO struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Items    []itemDTO `json:"items"`
	Total    string    `json:"total"`
	Currency string    `json:"currency"`
}

type orderDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"userId"`
	Items     []itemDTO `json:"items"`
	Total     string    `json:"total"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

// userDTO deliberately has no password field.
type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func toItemDTO(item domain.Item) itemDTO {
	return itemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price.Amount.StringFixed(2),
		Currency:    item.Price.Currency.String(),
		Description: item.Description,
	}
}

func toItemDTOs(items []domain.Item) []itemDTO {
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDTO(item))
	}
	return dtos
}

func toCartDTO(cart domain.Cart) cartDTO {
	return cartDTO{
		ID:       cart.ID,
		UserID:   cart.UserID,
		Items:    toItemDTOs(cart.Items),
		Total:    cart.Total.Amount.StringFixed(2),
		Currency: cart.Total.Currency.String(),
	}
}

func toOrderDTO(order domain.UserOrder) orderDTO {
	return orderDTO{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     toItemDTOs(order.Items),
		Total:     order.Total.Amount.StringFixed(2),
		Currency:  order.Total.Currency.String(),
		CreatedAt: order.CreatedAt,
	}
}

func toUserDTO(user domain.User) userDTO {
	return userDTO{ID: user.ID, Username: user.Username}
}
