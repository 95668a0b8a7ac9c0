package service_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository/memory"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	other := randomItem(2)
	catalog := service.NewCatalog(memory.New(roundWidget, other))
	ctx := t.Context()

	t.Run("all items: ok", func(t *testing.T) {
		items, err := catalog.Items(ctx)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]domain.Item{roundWidget, other}, items))
	})

	t.Run("by id: ok", func(t *testing.T) {
		item, err := catalog.Item(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(roundWidget, item))
	})

	t.Run("by id: not found", func(t *testing.T) {
		_, err := catalog.Item(ctx, 2000)
		require.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("by name: ok", func(t *testing.T) {
		items, err := catalog.ItemsByName(ctx, "Round Widget")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ID)
	})

	t.Run("by name: not found", func(t *testing.T) {
		_, err := catalog.ItemsByName(ctx, "Square Widget")
		require.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestCatalogEmpty(t *testing.T) {
	items, err := service.NewCatalog(memory.New()).Items(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
