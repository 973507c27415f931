// Package repository keeps per-entity cached collections in sync with the
// external travel API. Each collection is fetched once on first use and
// then patched in place after every successful write, so list screens
// never refetch just to reflect their own mutations.
package repository

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Record is any entity with a server-assigned identifier.
type Record interface {
	Key() string
}

// Ops bundles the API calls backing one collection. Fetch is required;
// the mutators may be nil for read-only or create-only collections.
type Ops[T Record, P any] struct {
	Fetch  func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, payload P) (T, error)
	Update func(ctx context.Context, id string, payload P) (T, error)
	Remove func(ctx context.Context, id string) error
}

// Store is the cached collection for one entity type. All methods are
// safe for concurrent use; in-flight API calls are independent with no
// queueing, matching last-write-wins semantics.
type Store[T Record, P any] struct {
	name string
	ops  Ops[T, P]
	log  *zap.Logger

	mu     sync.Mutex
	items  []T
	loaded bool
}

// New constructs a Store named for log messages.
func New[T Record, P any](name string, log *zap.Logger, ops Ops[T, P]) *Store[T, P] {
	return &Store[T, P]{name: name, ops: ops, log: log}
}

// Ensure fetches the collection on first use. A fetch failure leaves the
// collection empty and is logged, not surfaced: the page renders an empty
// state and the next render retries.
func (s *Store[T, P]) Ensure(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loadLocked(ctx)
}

// Reload unconditionally refetches the collection, the manual correction
// path for a cache gone stale under concurrent edits elsewhere.
func (s *Store[T, P]) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
}

func (s *Store[T, P]) loadLocked(ctx context.Context) {
	items, err := s.ops.Fetch(ctx)
	if err != nil {
		s.log.Error("failed to load collection", zap.String("collection", s.name), zap.Error(err))
		s.items = nil
		s.loaded = false
		return
	}
	s.items = items
	s.loaded = true
}

// All returns a copy of the collection in server order.
func (s *Store[T, P]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the collection size.
func (s *Store[T, P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get returns the record with the given id.
func (s *Store[T, P]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create submits the payload and, on success, appends the server-returned
// record after all existing entries. On failure the collection is
// unchanged and the error is returned for the page to surface.
func (s *Store[T, P]) Create(ctx context.Context, payload P) (T, error) {
	created, err := s.ops.Create(ctx, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

// Update submits the payload and, on success, replaces the matching local
// record in place, preserving the order of everything else.
func (s *Store[T, P]) Update(ctx context.Context, id string, payload P) (T, error) {
	updated, err := s.ops.Update(ctx, id, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	s.replace(updated)
	return updated, nil
}

// Remove deletes the record via the API and, on success, drops the
// matching local record.
func (s *Store[T, P]) Remove(ctx context.Context, id string) error {
	if err := s.ops.Remove(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.Key() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

// Patch replaces the matching local record with one returned by an API
// call made outside the store's own mutators (status updates and other
// action endpoints).
func (s *Store[T, P]) Patch(updated T) {
	s.replace(updated)
}

func (s *Store[T, P]) replace(updated T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.Key() == updated.Key() {
			s.items[i] = updated
			return
		}
	}
}

// Filter returns the records whose designated fields contain term,
// case-insensitively, preserving relative order. An empty term returns
// the whole collection. Filtering never fetches.
func (s *Store[T, P]) Filter(term string, fields func(T) []string) []T {
	all := s.All()
	if term == "" {
		return all
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(all))
	for _, item := range all {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
