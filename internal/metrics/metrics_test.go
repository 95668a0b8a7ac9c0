package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewHTTP(reg)
	require.NoError(t, err)

	m.Observe(http.MethodGet, "/api/item", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodGet, "/api/item", http.StatusOK, 20*time.Millisecond)
	m.Observe(http.MethodGet, "/api/item", http.StatusNotFound, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/item", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/item", "404")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	_, err = NewHTTP(reg)
	require.Error(t, err, "duplicate registration")
}

func TestShop(t *testing.T) {
	m, err := NewShop(prometheus.NewRegistry())
	require.NoError(t, err)

	m.CartUpdated("add")
	m.CartUpdated("add")
	m.CartUpdated("remove")
	m.OrderSubmitted()

	assert.InDelta(t, 2, testutil.ToFloat64(m.cartUpdates.WithLabelValues("add")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cartUpdates.WithLabelValues("remove")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.orders), 0)
}
