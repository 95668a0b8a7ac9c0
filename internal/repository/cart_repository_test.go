package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type repositorySuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	pool      *pgxpool.Pool

	users  port.UserRepository
	items  port.ItemRepository
	carts  port.CartRepository
	orders port.OrderRepository

	roundWidget  domain.Item
	squareWidget domain.Item
}

// entry point to run the tests in the suite
func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(repositorySuite))
}

// before all tests in the suite
func (suite *repositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)
	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.Require().NoError(migrate(suite.pool))

	suite.users = repository.NewUser(suite.pool)
	suite.items = repository.NewItem(suite.pool)
	suite.carts = repository.NewCart(suite.pool)
	suite.orders = repository.NewOrder(suite.pool)

	seeded, err := suite.items.FindAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(seeded, 2)
	suite.roundWidget, suite.squareWidget = seeded[0], seeded[1]
}

// after all tests in the suite
func (suite *repositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *repositorySuite) TestSeededItems() {
	t := suite.T()

	assert.Equal(t, "Round Widget", suite.roundWidget.Name)
	assert.Equal(t, "2.99", suite.roundWidget.Price.Amount.StringFixed(2))
	assert.Equal(t, "USD", suite.roundWidget.Price.Currency.String())
	assert.Equal(t, "Square Widget", suite.squareWidget.Name)
}

func (suite *repositorySuite) TestFindItems() {
	t := suite.T()
	ctx := t.Context()

	item, err := suite.items.FindByID(ctx, suite.roundWidget.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Empty(t, cmp.Diff(suite.roundWidget, *item))

	missing, err := suite.items.FindByID(ctx, 1_000_000)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byName, err := suite.items.FindByName(ctx, "Square Widget")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, suite.squareWidget.ID, byName[0].ID)

	none, err := suite.items.FindByName(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func (suite *repositorySuite) TestCreateUser() {
	tests := []struct {
		name      string
		username  string
		duplicate bool
		wantError error
	}{
		{name: "create user: ok", username: gofakeit.Username() + gofakeit.UUID()},
		{name: "duplicate username: error", username: gofakeit.UUID(), duplicate: true, wantError: domain.ErrUsernameTaken},
		{name: "empty username: error", username: "", wantError: domain.ErrEmptyUsername},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			if tt.duplicate {
				_, err := suite.users.CreateUser(ctx, tt.username, "hash")
				require.NoError(t, err)
			}

			user, err := suite.users.CreateUser(ctx, tt.username, "hash")
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			found, err := suite.users.FindByUsername(ctx, tt.username)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, user, *found)

			cart, err := suite.carts.GetCart(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, user.ID, cart.UserID)
			assert.Empty(t, cart.Items)
			assert.True(t, cart.Total.Amount.IsZero())
		})
	}
}

func (suite *repositorySuite) TestFindUnknownUser() {
	user, err := suite.users.FindByUsername(suite.T().Context(), gofakeit.UUID())
	suite.Require().NoError(err)
	suite.Nil(user)
}

func (suite *repositorySuite) TestSaveCart() {
	t := suite.T()
	ctx := t.Context()
	user := suite.createUser()

	cart, err := suite.carts.GetCart(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, cart.Add(suite.roundWidget, 2))
	require.NoError(t, cart.Add(suite.squareWidget, 1))
	require.NoError(t, cart.Add(suite.roundWidget, 1))

	saved, err := suite.carts.SaveCart(ctx, cart)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cart, saved))
	assert.Equal(t, "10.96", saved.Total.Amount.StringFixed(2))

	// entry order survives a reload
	ids := make([]int64, 0, len(saved.Items))
	for _, it := range saved.Items {
		ids = append(ids, it.ID)
	}
	rw, sw := suite.roundWidget.ID, suite.squareWidget.ID
	assert.Equal(t, []int64{rw, rw, sw, rw}, ids)

	_, err = cart.Remove(suite.roundWidget.ID, 3)
	require.NoError(t, err)

	saved, err = suite.carts.SaveCart(ctx, cart)
	require.NoError(t, err)
	require.Len(t, saved.Items, 1)
	assert.True(t, decimal.RequireFromString("1.99").Equal(saved.Total.Amount))

	_, err = cart.Remove(suite.squareWidget.ID, 1)
	require.NoError(t, err)

	saved, err = suite.carts.SaveCart(ctx, cart)
	require.NoError(t, err)
	assert.Empty(t, saved.Items)
	assert.True(t, saved.Total.Amount.IsZero())
}

func (suite *repositorySuite) TestSaveUnknownCart() {
	_, err := suite.carts.SaveCart(suite.T().Context(), domain.Cart{ID: 1_000_000, Total: domain.ZeroMoney(domain.DefaultCurrency)})
	suite.Require().EqualError(err, "cart[1000000] does not exist")
}

func (suite *repositorySuite) TestCartWithTx() {
	t := suite.T()
	ctx := t.Context()
	user := suite.createUser()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txCarts := repository.NewCartWithTx(tx)
	cart, err := txCarts.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(suite.roundWidget, 1))

	_, err = txCarts.SaveCart(ctx, cart)
	require.NoError(t, err)

	// a failed save only rolls back its savepoint, the outer tx stays usable
	_, err = txCarts.SaveCart(ctx, domain.Cart{ID: 1_000_000, Total: domain.ZeroMoney(domain.DefaultCurrency)})
	require.EqualError(t, err, "cart[1000000] does not exist")

	inTx, err := txCarts.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, inTx.Items, 1)

	require.NoError(t, tx.Rollback(ctx))

	after, err := suite.carts.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
}

func (suite *repositorySuite) TestOrders() {
	t := suite.T()
	ctx := t.Context()
	user := suite.createUser()

	orders, err := suite.orders.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	cart, err := suite.carts.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, cart.Add(suite.roundWidget, 1))

	first := domain.NewOrderFromCart(cart, time.Now().UTC().Truncate(time.Microsecond))
	_, err = suite.orders.AppendOrder(ctx, first)
	require.NoError(t, err)

	require.NoError(t, cart.Add(suite.squareWidget, 2))
	second := domain.NewOrderFromCart(cart, time.Now().UTC().Truncate(time.Microsecond))
	_, err = suite.orders.AppendOrder(ctx, second)
	require.NoError(t, err)

	empty := domain.NewOrderFromCart(domain.Cart{UserID: user.ID, Total: domain.ZeroMoney(domain.DefaultCurrency)}, time.Now().UTC().Truncate(time.Microsecond))
	_, err = suite.orders.AppendOrder(ctx, empty)
	require.NoError(t, err)

	orders, err = suite.orders.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	opts := cmp.Options{
		cmpopts.EquateEmpty(),
		cmpopts.EquateApproxTime(time.Millisecond),
	}
	assert.Empty(t, cmp.Diff([]domain.UserOrder{first, second, empty}, orders, opts))
	assert.Equal(t, "6.97", orders[1].Total.Amount.StringFixed(2))
}

func (suite *repositorySuite) TestAppendOrderWithoutID() {
	_, err := suite.orders.AppendOrder(suite.T().Context(), domain.UserOrder{})
	suite.Require().EqualError(err, "order ID is empty")
}

func (suite *repositorySuite) createUser() domain.User {
	user, err := suite.users.CreateUser(suite.T().Context(), gofakeit.UUID(), gofakeit.Password(true, true, true, false, false, 12))
	suite.Require().NoError(err)
	return user
}
