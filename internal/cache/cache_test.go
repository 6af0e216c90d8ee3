package cache

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsAreScopedByTenant(t *testing.T) {
	views := NewViews(1, time.Minute)

	views.Set("tenant-a", "rec-1", []byte(`{"id":"rec-1"}`))

	got, ok := views.Get("tenant-a", "rec-1")
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"rec-1"}`, string(got))

	_, ok = views.Get("tenant-b", "rec-1")
	assert.False(t, ok)
}

func TestInvalidateDropsTheView(t *testing.T) {
	views := NewViews(1, time.Minute)
	views.Set("tenant-a", "rec-1", []byte("v1"))
	views.Invalidate("tenant-a", "rec-1")

	_, ok := views.Get("tenant-a", "rec-1")
	assert.False(t, ok)

	// invalidating a missing key is harmless
	views.Invalidate("tenant-a", "missing")
}

func TestHitAndMissCounters(t *testing.T) {
	views := NewViews(1, time.Second)
	hits := testutil.ToFloat64(hitCounter)
	misses := testutil.ToFloat64(missCounter)

	views.Get("t", "absent")
	views.Set("t", "present", []byte("x"))
	views.Get("t", "present")

	assert.Equal(t, hits+1, testutil.ToFloat64(hitCounter))
	assert.Equal(t, misses+1, testutil.ToFloat64(missCounter))
}

func TestDisabledCacheNeverHits(t *testing.T) {
	views := NewViews(0, time.Minute)
	views.Set("t", "r", []byte("x"))
	_, ok := views.Get("t", "r")
	assert.False(t, ok)
	assert.IsType(t, noopViews{}, views)
}
