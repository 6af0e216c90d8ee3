// Package cache keeps rendered record views in an in-process freecache so
// repeated reads of the same record skip Postgres.
package cache

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	hitCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "health_records",
		Subsystem: "view_cache",
		Name:      "hits_total",
		Help:      "Record view lookups served from the cache.",
	})
	missCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "health_records",
		Subsystem: "view_cache",
		Name:      "misses_total",
		Help:      "Record view lookups that fell through to storage.",
	})
)

func init() {
	prometheus.MustRegister(hitCounter, missCounter)
}

// Views stores encoded record views keyed by tenant and record id.
type Views interface {
	Get(tenantID, recordID string) ([]byte, bool)
	Set(tenantID, recordID string, view []byte)
	Invalidate(tenantID, recordID string)
}

// NewViews returns a freecache-backed Views holding up to sizeMB megabytes.
// A non-positive size disables caching.
func NewViews(sizeMB int, ttl time.Duration) Views {
	if sizeMB <= 0 {
		return noopViews{}
	}
	return &freecacheViews{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   max(int(ttl/time.Second), 1),
	}
}

type freecacheViews struct {
	cache *freecache.Cache
	ttl   int
}

func key(tenantID, recordID string) []byte {
	return []byte(tenantID + "/" + recordID)
}

func (c *freecacheViews) Get(tenantID, recordID string) ([]byte, bool) {
	view, err := c.cache.Get(key(tenantID, recordID))
	if err != nil {
		missCounter.Inc()
		return nil, false
	}
	hitCounter.Inc()
	return view, true
}

func (c *freecacheViews) Set(tenantID, recordID string, view []byte) {
	// entries larger than 1/1024 of the cache are rejected; that only costs a miss
	_ = c.cache.Set(key(tenantID, recordID), view, c.ttl)
}

func (c *freecacheViews) Invalidate(tenantID, recordID string) {
	c.cache.Del(key(tenantID, recordID))
}

type noopViews struct{}

func (noopViews) Get(string, string) ([]byte, bool) { return nil, false }
func (noopViews) Set(string, string, []byte)        {}
func (noopViews) Invalidate(string, string)         {}
