package memory_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersAndCarts(t *testing.T) {
	ctx := t.Context()
	store := memory.New(memory.SeedItems()...)

	_, err := store.CreateUser(ctx, "", "hash")
	require.ErrorIs(t, err, domain.ErrEmptyUsername)

	user, err := store.CreateUser(ctx, "test", "hash")
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, "test", "hash")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	found, err := store.FindByUsername(ctx, "test")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user, *found)

	missing, err := store.FindByUsername(ctx, "someone")
	require.NoError(t, err)
	assert.Nil(t, missing)

	cart, err := store.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = store.GetCart(ctx, user.ID+1)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	round := memory.SeedItems()[0]
	require.NoError(t, cart.Add(round, 2))

	saved, err := store.SaveCart(ctx, cart)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cart, saved))

	// the store keeps its own copy
	saved.Items[0].Name = "changed"
	reloaded, err := store.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, round.Name, reloaded.Items[0].Name)

	cart.ID++
	_, err = store.SaveCart(ctx, cart)
	require.Error(t, err)
}

func TestItems(t *testing.T) {
	ctx := t.Context()
	store := memory.New(memory.SeedItems()...)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)

	item, err := store.FindByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Square Widget", item.Name)

	item, err = store.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, item)

	byName, err := store.FindByName(ctx, "Round Widget")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byName, err = store.FindByName(ctx, "Triangle")
	require.NoError(t, err)
	assert.Empty(t, byName)
}

func TestOrders(t *testing.T) {
	ctx := t.Context()
	store := memory.New(memory.SeedItems()...)

	orders, err := store.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	cart := domain.Cart{ID: 1, UserID: 1, Total: domain.ZeroMoney(domain.DefaultCurrency)}
	require.NoError(t, cart.Add(memory.SeedItems()[0], 1))

	first, err := store.AppendOrder(ctx, domain.NewOrderFromCart(cart, time.Now()))
	require.NoError(t, err)
	second, err := store.AppendOrder(ctx, domain.NewOrderFromCart(cart, time.Now()))
	require.NoError(t, err)
	_, err = store.AppendOrder(ctx, domain.NewOrderFromCart(domain.Cart{UserID: 2}, time.Now()))
	require.NoError(t, err)

	orders, err = store.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}
