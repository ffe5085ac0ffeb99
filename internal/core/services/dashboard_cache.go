package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/observability/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// ComputeFunc produces fresh dashboard views for a scope.
type ComputeFunc func(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error)

// cacheKey identifies one cached computation.
// epoch and generation move on invalidation, bucket moves with the clock.
type cacheKey struct {
	scope      domain.Scope
	epoch      uint64
	generation uint64
	bucket     int64
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%s/%d/%d/%d", k.scope.String(), k.epoch, k.generation, k.bucket)
}

type inflightRefresh struct {
	cancel     context.CancelFunc
	superseded atomic.Bool
}

// DashboardCache is a short-lived, scope-keyed cache of dashboard views.
//
// Concurrent misses for the same key share one computation. Invalidating a scope
// makes its entries unreachable and causes computations started before the
// invalidation to be returned to their callers without being stored.
type DashboardCache struct {
	compute ComputeFunc
	ttl     time.Duration
	clock   func() time.Time

	entries *expirable.LRU[cacheKey, *domain.DashboardViews]
	group   singleflight.Group

	mu          sync.Mutex
	epoch       uint64
	generations map[domain.Scope]uint64
	refreshes   map[domain.Scope]*inflightRefresh
}

// NewDashboardCache creates a cache holding up to size entries for ttl each.
func NewDashboardCache(compute ComputeFunc, size int, ttl time.Duration, clock func() time.Time) *DashboardCache {
	if size <= 0 {
		size = 256
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	if clock == nil {
		clock = time.Now
	}
	return &DashboardCache{
		compute:     compute,
		ttl:         ttl,
		clock:       clock,
		entries:     expirable.NewLRU[cacheKey, *domain.DashboardViews](size, nil, ttl),
		generations: make(map[domain.Scope]uint64),
		refreshes:   make(map[domain.Scope]*inflightRefresh),
	}
}

func (c *DashboardCache) keyFor(scope domain.Scope) cacheKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cacheKey{
		scope:      scope,
		epoch:      c.epoch,
		generation: c.generations[scope],
		bucket:     c.clock().Truncate(c.ttl).Unix(),
	}
}

// store adds views under key unless the scope was invalidated since key was taken.
func (c *DashboardCache) store(key cacheKey, views *domain.DashboardViews) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key.epoch != c.epoch || key.generation != c.generations[key.scope] {
		return false
	}
	c.entries.Add(key, views)
	return true
}

// GetOrCompute returns cached views for scope or computes them once for all concurrent callers.
// The computation runs detached from any single caller's cancellation; a caller whose ctx is
// cancelled stops waiting and gets ctx.Err().
func (c *DashboardCache) GetOrCompute(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	key := c.keyFor(scope)
	if views, ok := c.entries.Get(key); ok {
		metrics.IncCacheLookup("hit")
		return views, nil
	}

	computeCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (any, error) {
		if views, ok := c.entries.Get(key); ok {
			return views, nil
		}
		views, err := c.compute(computeCtx, scope)
		if err != nil {
			return nil, err
		}
		if !c.store(key, views) {
			middleware.GetLoggerFromCtx(computeCtx).Debug("Discarding dashboard computed before invalidation",
				slog.String("scope", scope.String()))
		}
		return views, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			metrics.IncCacheLookup("shared")
		} else {
			metrics.IncCacheLookup("miss")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.DashboardViews), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops cached views for scope. Views for the unfiltered scope always include
// every entity, so they are dropped too. Invalidating AllScopes drops everything.
func (c *DashboardCache) Invalidate(scope domain.Scope) {
	c.mu.Lock()
	if scope.IsAll() {
		c.epoch++
	} else {
		c.generations[scope]++
		c.generations[domain.AllScopes]++
	}
	c.mu.Unlock()

	metrics.IncCacheInvalidation()
	if scope.IsAll() {
		c.entries.Purge()
		return
	}
	for _, key := range c.entries.Keys() {
		if key.scope == scope || key.scope.IsAll() {
			c.entries.Remove(key)
		}
	}
}

// Refresh invalidates scope and recomputes it. A refresh still running for the same scope is
// cancelled and its caller receives apperrors.ErrSuperseded; the newest refresh wins.
func (c *DashboardCache) Refresh(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	refreshCtx, cancel := context.WithCancel(ctx)
	current := &inflightRefresh{cancel: cancel}

	c.mu.Lock()
	if previous, ok := c.refreshes[scope]; ok {
		previous.superseded.Store(true)
		previous.cancel()
		metrics.IncRefreshSuperseded()
	}
	c.refreshes[scope] = current
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.refreshes[scope] == current {
			delete(c.refreshes, scope)
		}
		c.mu.Unlock()
		cancel()
	}()

	c.Invalidate(scope)
	key := c.keyFor(scope)

	views, err := c.compute(refreshCtx, scope)
	if current.superseded.Load() {
		return nil, apperrors.ErrSuperseded
	}
	if err != nil {
		// a caller that went away reports its own cancellation, not the source failures it caused
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	c.store(key, views)
	return views, nil
}

// Len reports the number of live entries.
func (c *DashboardCache) Len() int {
	return c.entries.Len()
}
