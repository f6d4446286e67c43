package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

// Table adapts one PostgREST table to the ports.Resource contract.
// T is the row type; its json tags name the columns.
type Table[T any] struct {
	c    *Client
	name string
}

// NewTable binds a table name to the shared client.
func NewTable[T any](c *Client, name string) *Table[T] {
	return &Table[T]{c: c, name: name}
}

func (t *Table[T]) endpoint(order *ports.Order, filters []ports.Eq) string {
	q := url.Values{}
	q.Set("select", "*")
	for _, f := range filters {
		q.Set(f.Column, "eq."+fmt.Sprint(f.Value))
	}
	if order != nil {
		dir := "asc"
		if order.Descending {
			dir = "desc"
		}
		q.Set("order", order.Column+"."+dir)
	}
	return t.c.baseURL + "/rest/v1/" + t.name + "?" + q.Encode()
}

// Select returns every row matching filters, sorted by order when non-nil.
func (t *Table[T]) Select(ctx context.Context, order *ports.Order, filters ...ports.Eq) ([]T, error) {
	var rows []T
	if err := t.c.do(ctx, http.MethodGet, t.endpoint(order, filters), nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert creates one row and returns it as persisted. The row is sent as a
// one-element array and the response unwrapped, matching the data API's
// bulk-insert shape.
func (t *Table[T]) Insert(ctx context.Context, row map[string]any) (T, error) {
	var zero T
	headers := map[string]string{"Prefer": "return=representation"}

	var created []T
	if err := t.c.do(ctx, http.MethodPost, t.endpoint(nil, nil), headers, []map[string]any{row}, &created); err != nil {
		return zero, err
	}
	if len(created) == 0 {
		return zero, &APIError{Status: http.StatusInternalServerError, Message: "insert returned no row"}
	}
	return created[0], nil
}

// Update patches every row matching filters and returns the updated rows.
func (t *Table[T]) Update(ctx context.Context, patch map[string]any, filters ...ports.Eq) ([]T, error) {
	headers := map[string]string{"Prefer": "return=representation"}

	var updated []T
	if err := t.c.do(ctx, http.MethodPatch, t.endpoint(nil, filters), headers, patch, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes every row matching filters.
func (t *Table[T]) Delete(ctx context.Context, filters ...ports.Eq) error {
	return t.c.do(ctx, http.MethodDelete, t.endpoint(nil, filters), nil, nil, nil)
}
