// Package store holds the cached collections that mirror the remote
// tables. Each collection is a cache, never the source of truth: it may be
// stale or empty until a fetch populates it, and every mutation round-trips
// to the backend first.
//
// Error policy: operations never propagate a failure to the caller. The
// remote error is logged, recorded on the collection (readable via Err
// until the next operation), and a type-appropriate sentinel is returned:
// nil for single entities, false for deletes, an empty slice for filtered
// fetches. FetchAll leaves the cached items untouched on failure.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianglenncurilan/web-quickwork/internal/api/metrics"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// errUpdateNoRow covers the backend acknowledging an update that matched
// nothing, which means the row vanished between check and write.
var errUpdateNoRow = errors.New("update returned no row")

// Collection is the generic cached store over one remote table.
// The items/loading/err triple is shared across handler goroutines and is
// guarded by mu; remote calls happen outside the lock, so two concurrent
// writers interleave exactly like the async callers they replace.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	err     error

	resource ports.Resource[T]
	name     string
	orderBy  ports.Order
	timeout  time.Duration
	log      zerolog.Logger
}

func newCollection[T any](resource ports.Resource[T], name string, orderBy ports.Order, log zerolog.Logger, timeout time.Duration) *Collection[T] {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Collection[T]{
		resource: resource,
		name:     name,
		orderBy:  orderBy,
		timeout:  timeout,
		log:      log.With().Str("store", name).Logger(),
	}
}

// begin flips the loading flag and clears the previous operation's error.
func (c *Collection[T]) begin() time.Time {
	c.mu.Lock()
	c.loading = true
	c.err = nil
	c.mu.Unlock()
	return time.Now()
}

// finish records the operation's own outcome and always clears loading.
func (c *Collection[T]) finish(op string, start time.Time, err error) {
	c.mu.Lock()
	c.loading = false
	c.err = err
	c.mu.Unlock()

	metrics.StoreOpsTotal.WithLabelValues(c.name, op).Inc()
	metrics.StoreOpDuration.WithLabelValues(c.name, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues(c.name, op).Inc()
		c.log.Error().Err(err).Str("op", op).Msg("store operation failed")
	}
}

// opCtx bounds one remote round trip so a hung call cannot leave the
// loading flag stuck.
func (c *Collection[T]) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// FetchAll refreshes the whole cache: all rows, newest first. On failure
// the previous items survive. This is the only operation that replaces the
// cache wholesale; keyed fetches are pass-through reads (see fetchWhere).
func (c *Collection[T]) FetchAll(ctx context.Context) {
	start := c.begin()
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	rows, err := c.resource.Select(ctx, &c.orderBy)
	if err != nil {
		c.finish("fetch_all", start, err)
		return
	}

	c.mu.Lock()
	c.items = rows
	c.mu.Unlock()
	c.finish("fetch_all", start, nil)
}

// fetchWhere returns the rows matching filters without touching the shared
// cache. A filtered page replacing the full cache would silently shrink it,
// so the cache refresh stays FetchAll's job alone.
func (c *Collection[T]) fetchWhere(ctx context.Context, op string, filters ...ports.Eq) []T {
	start := c.begin()
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	rows, err := c.resource.Select(ctx, &c.orderBy, filters...)
	if err != nil {
		c.finish(op, start, err)
		return []T{}
	}
	c.finish(op, start, nil)
	return rows
}

// create inserts one row and prepends the persisted result to the cache.
func (c *Collection[T]) create(ctx context.Context, op string, row map[string]any) *T {
	start := c.begin()
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	created, err := c.resource.Insert(ctx, row)
	if err != nil {
		c.finish(op, start, err)
		return nil
	}

	c.mu.Lock()
	c.items = append([]T{created}, c.items...)
	c.mu.Unlock()
	c.finish(op, start, nil)
	return &created
}

// upsert treats a submission as idempotent by natural key: an existence
// check on filters routes to update when a row exists, insert otherwise.
// The check and the write are two round trips with no atomicity guarantee;
// two concurrent submitters can both observe "no row" and both insert
// (TOCTOU). Closing that window needs a unique constraint on the remote
// table, which is outside this client.
//
// Locally the result replaces the entry matching sameKey in place, or is
// prepended when none matches.
func (c *Collection[T]) upsert(ctx context.Context, op string, row, patch map[string]any, filters []ports.Eq, sameKey func(T) bool) *T {
	start := c.begin()
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	existing, err := c.resource.Select(ctx, nil, filters...)
	if err != nil {
		c.finish(op, start, err)
		return nil
	}

	var result T
	if len(existing) > 0 {
		updated, err := c.resource.Update(ctx, patch, filters...)
		if err != nil {
			c.finish(op, start, err)
			return nil
		}
		if len(updated) == 0 {
			c.finish(op, start, errUpdateNoRow)
			return nil
		}
		result = updated[0]
		metrics.UpsertsTotal.WithLabelValues(c.name, "update").Inc()
	} else {
		created, err := c.resource.Insert(ctx, row)
		if err != nil {
			c.finish(op, start, err)
			return nil
		}
		result = created
		metrics.UpsertsTotal.WithLabelValues(c.name, "insert").Inc()
	}

	c.replaceOrPrepend(result, sameKey)
	c.finish(op, start, nil)
	return &result
}

// update patches the rows matching filters and replaces the matching local
// entry in place. Unlike upsert it never prepends: an entity absent from
// the cache stays absent.
func (c *Collection[T]) update(ctx context.Context, op string, patch map[string]any, filters []ports.Eq, sameKey func(T) bool) *T {
	start := c.begin()
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	updated, err := c.resource.Update(ctx, patch, filters...)
	if err != nil {
		c.finish(op, start, err)
		return nil
	}
	if len(updated) == 0 {
		c.finish(op, start, errUpdateNoRow)
		return nil
	}
	result := updated[0]

	c.mu.Lock()
	for i := range c.items {
		if sameKey(c.items[i]) {
			c.items[i] = result
			break
		}
	}
	c.mu.Unlock()
	c.finish(op, start, nil)
	return &result
}

// deleteWhere removes the remote rows matching filters, then drops every
// matching local entry. Deleting an absent id is a remote no-op and still
// reports success.
func (c *Collection[T]) deleteWhere(ctx context.Context, op string, filters []ports.Eq, sameKey func(T) bool) bool {
	start := c.begin()
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if err := c.resource.Delete(ctx, filters...); err != nil {
		c.finish(op, start, err)
		return false
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if !sameKey(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()
	c.finish(op, start, nil)
	return true
}

// replaceOrPrepend swaps the entry matching sameKey in place, or prepends
// when none matches. Local state only grows or mutates in place.
func (c *Collection[T]) replaceOrPrepend(item T, sameKey func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if sameKey(c.items[i]) {
			c.items[i] = item
			return
		}
	}
	c.items = append([]T{item}, c.items...)
}

// find returns a copy of the first cached entry matching match, nil when
// none does. Linear scan; the collections stay small.
func (c *Collection[T]) find(match func(T) bool) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if match(c.items[i]) {
			item := c.items[i]
			return &item
		}
	}
	return nil
}

// Items returns a snapshot copy of the cached collection, newest first.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether an operation is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the last operation's failure, nil after a success.
func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}
