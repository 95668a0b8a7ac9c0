// Package api exposes the storefront services over HTTP with gorilla/mux.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CartService interface {
	AddToCart(ctx context.Context, username string, itemID int64, quantity int) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, username string, itemID int64, quantity int) (domain.Cart, error)
}

type OrderService interface {
	Submit(ctx context.Context, username string) (domain.UserOrder, error)
	OrdersForUser(ctx context.Context, username string) ([]domain.UserOrder, error)
}

type CatalogService interface {
	Items(ctx context.Context) ([]domain.Item, error)
	Item(ctx context.Context, id int64) (domain.Item, error)
	ItemsByName(ctx context.Context, name string) ([]domain.Item, error)
}

type UserService interface {
	Create(ctx context.Context, username, password string) (domain.User, error)
	ByUsername(ctx context.Context, username string) (domain.User, error)
}

// Deps are the services behind the routes. Registry receives the HTTP and shop
// collectors and is served at the metrics path.
type Deps struct {
	Cart    CartService
	Order   OrderService
	Catalog CatalogService
	User    UserService

	Registry *prometheus.Registry
}

// Options holds the HTTP server settings, usually built from config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds a single handler via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MetricsPath is the path prometheus scrapes.
	MetricsPath string
	// TrustProxyHeaders lets ClientIP read X-Forwarded-For and X-Real-IP.
	TrustProxyHeaders bool
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MetricsPath:       cfg.HTTP.MetricsPath,
		TrustProxyHeaders: cfg.HTTP.TrustProxyHeaders,
	}
}

// NewRouter registers the API routes, the metrics endpoint and the
// metrics and access-log middlewares.
func NewRouter(deps Deps, opts Options) (http.Handler, error) {
	httpMetrics, err := metrics.NewHTTP(deps.Registry)
	if err != nil {
		return nil, fmt.Errorf("metrics.NewHTTP: %w", err)
	}

	shopMetrics, err := metrics.NewShop(deps.Registry)
	if err != nil {
		return nil, fmt.Errorf("metrics.NewShop: %w", err)
	}

	h := &handler{deps: deps, shop: shopMetrics}

	r := mux.NewRouter()
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	a := r.PathPrefix("/api").Subrouter()
	a.Use(withMetrics(httpMetrics))

	a.HandleFunc("/cart/addToCart", h.addToCart).Methods(http.MethodPost)
	a.HandleFunc("/cart/removeFromCart", h.removeFromCart).Methods(http.MethodPost)

	a.HandleFunc("/order/submit/{username}", h.submitOrder).Methods(http.MethodPost)
	a.HandleFunc("/order/history/{username}", h.orderHistory).Methods(http.MethodGet)

	a.HandleFunc("/item", h.items).Methods(http.MethodGet)
	a.HandleFunc("/item/{id:[0-9]+}", h.item).Methods(http.MethodGet)
	a.HandleFunc("/item/name/{name}", h.itemsByName).Methods(http.MethodGet)

	a.HandleFunc("/user/create", h.createUser).Methods(http.MethodPost)
	a.HandleFunc("/user/{username}", h.user).Methods(http.MethodGet)

	return WithLogger(opts.TrustProxyHeaders)(r), nil
}

// NewServer returns a configured *http.Server serving NewRouter.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewRouter(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}, nil
}
