package ports

import "context"

// Eq is a single equality filter on one column.
type Eq struct {
	Column string
	Value  any
}

// Order is the single sort key a query may carry.
type Order struct {
	Column     string
	Descending bool
}

// Resource is the remote data API surface for one table. Implementations
// are pass-throughs: one network round trip per call, no retry, errors
// returned as-is. The caches in internal/core/store sit on top of this.
type Resource[T any] interface {
	// Select returns every row matching filters, sorted by order when
	// non-nil. No filters means select-all.
	Select(ctx context.Context, order *Order, filters ...Eq) ([]T, error)
	// Insert creates one row and returns it as persisted (server-assigned
	// id and defaults included).
	Insert(ctx context.Context, row map[string]any) (T, error)
	// Update patches every row matching filters and returns the updated rows.
	Update(ctx context.Context, patch map[string]any, filters ...Eq) ([]T, error)
	// Delete removes every row matching filters.
	Delete(ctx context.Context, filters ...Eq) error
}
