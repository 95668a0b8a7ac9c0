package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/metrics"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies; the largest valid one is a user
// creation with two 72 byte passwords.
const maxBodyBytes = 4 << 10

var (
	errMalformedBody    = errors.New("malformed request body")
	errBodyTooLarge     = errors.New("request body too large")
	errMalformedID      = errors.New("malformed item id")
	errPasswordMismatch = errors.New("passwords do not match")
)

type handler struct {
	deps Deps
	shop *metrics.Shop
}

func (h *handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	cart, err := h.deps.Cart.AddToCart(r.Context(), req.Username, req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.shop.CartUpdated("add")
	writeJSON(w, r, http.StatusOK, toCartDTO(cart))
}

func (h *handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	cart, err := h.deps.Cart.RemoveFromCart(r.Context(), req.Username, req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.shop.CartUpdated("remove")
	writeJSON(w, r, http.StatusOK, toCartDTO(cart))
}

func (h *handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.deps.Order.Submit(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.shop.OrderSubmitted()
	writeJSON(w, r, http.StatusOK, toOrderDTO(order))
}

func (h *handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.deps.Order.OrdersForUser(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]orderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, toOrderDTO(order))
	}
	writeJSON(w, r, http.StatusOK, dtos)
}

func (h *handler) items(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Catalog.Items(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toItemDTOs(items))
}

func (h *handler) item(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, errMalformedID)
		return
	}

	item, err := h.deps.Catalog.Item(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toItemDTO(item))
}

func (h *handler) itemsByName(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Catalog.ItemsByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toItemDTOs(items))
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.Password != req.ConfirmPassword {
		writeError(w, r, errPasswordMismatch)
		return
	}

	user, err := h.deps.User.Create(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toUserDTO(user))
}

func (h *handler) user(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.User.ByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toUserDTO(user))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, errMalformedBody),
		errors.Is(err, errMalformedID),
		errors.Is(err, errPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return errMalformedBody
	}

	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		msg = http.StatusText(status)
	}

	writeJSON(w, r, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}
