package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rec struct {
	ID   string
	Name string
}

func (r rec) Key() string { return r.ID }

// fakeOps serves a canned collection and creates records with sequential
// server-assigned ids.
type fakeOps struct {
	initial    []rec
	fetchErr   error
	mutateErr  error
	fetchCalls int
	nextID     int
}

func (f *fakeOps) ops() Ops[rec, string] {
	return Ops[rec, string]{
		Fetch: func(ctx context.Context) ([]rec, error) {
			f.fetchCalls++
			if f.fetchErr != nil {
				return nil, f.fetchErr
			}
			out := make([]rec, len(f.initial))
			copy(out, f.initial)
			return out, nil
		},
		Create: func(ctx context.Context, name string) (rec, error) {
			if f.mutateErr != nil {
				return rec{}, f.mutateErr
			}
			f.nextID++
			return rec{ID: fmt.Sprintf("srv-%d", f.nextID), Name: name}, nil
		},
		Update: func(ctx context.Context, id, name string) (rec, error) {
			if f.mutateErr != nil {
				return rec{}, f.mutateErr
			}
			return rec{ID: id, Name: name}, nil
		},
		Remove: func(ctx context.Context, id string) error {
			return f.mutateErr
		},
	}
}

func newStore(f *fakeOps) *Store[rec, string] {
	return New("test", zap.NewNop(), f.ops())
}

func TestEnsure_FetchesOnce(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a"}, {ID: "b"}}}
	s := newStore(f)
	ctx := context.Background()

	s.Ensure(ctx)
	s.Ensure(ctx)

	assert.Equal(t, 1, f.fetchCalls, "second Ensure must not refetch")
	assert.Len(t, s.All(), 2)
}

func TestEnsure_FailureDegradesAndRetries(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a"}}, fetchErr: errors.New("api down")}
	s := newStore(f)
	ctx := context.Background()

	s.Ensure(ctx)
	assert.Empty(t, s.All(), "failed load must leave the collection empty")

	// The API recovers; the next render retries the fetch.
	f.fetchErr = nil
	s.Ensure(ctx)
	assert.Equal(t, 2, f.fetchCalls)
	assert.Len(t, s.All(), 1)
}

func TestCreate_AppendsServerRecord(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}}
	s := newStore(f)
	ctx := context.Background()
	s.Ensure(ctx)

	created, err := s.Create(ctx, "third")
	require.NoError(t, err)
	require.Equal(t, "srv-1", created.ID, "id must come from the server")

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, created, all[2], "created record must be appended last")

	count := 0
	for _, r := range all {
		if r.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count, "created id must appear exactly once")
}

func TestCreate_FailureLeavesCollectionUnchanged(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a"}}}
	s := newStore(f)
	ctx := context.Background()
	s.Ensure(ctx)

	f.mutateErr = errors.New("rejected")
	_, err := s.Create(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, []rec{{ID: "a"}}, s.All())
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	f := &fakeOps{initial: []rec{
		{ID: "a", Name: "alpha"},
		{ID: "b", Name: "beta"},
		{ID: "c", Name: "gamma"},
	}}
	s := newStore(f)
	ctx := context.Background()
	s.Ensure(ctx)

	updated, err := s.Update(ctx, "b", "BETA")
	require.NoError(t, err)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, rec{ID: "a", Name: "alpha"}, all[0], "preceding record untouched")
	assert.Equal(t, updated, all[1], "matching record replaced in place")
	assert.Equal(t, rec{ID: "c", Name: "gamma"}, all[2], "following record untouched")
}

func TestRemove_DropsExactlyOne(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	s := newStore(f)
	ctx := context.Background()
	s.Ensure(ctx)

	require.NoError(t, s.Remove(ctx, "b"))

	all := s.All()
	require.Len(t, all, 2)
	for _, r := range all {
		assert.NotEqual(t, "b", r.ID)
	}
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
}

func TestRemove_FailureLeavesCollectionUnchanged(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a"}, {ID: "b"}}}
	s := newStore(f)
	ctx := context.Background()
	s.Ensure(ctx)

	f.mutateErr = errors.New("rejected")
	require.Error(t, s.Remove(ctx, "a"))
	assert.Len(t, s.All(), 2)
}

func TestPatch_ReplacesByKey(t *testing.T) {
	f := &fakeOps{initial: []rec{{ID: "a", Name: "old"}}}
	s := newStore(f)
	s.Ensure(context.Background())

	s.Patch(rec{ID: "a", Name: "new"})
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", got.Name)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	f := &fakeOps{initial: []rec{
		{ID: "1", Name: "Goa Beach Escape"},
		{ID: "2", Name: "Himalayan Trek"},
		{ID: "3", Name: "Backwaters of Kerala"},
		{ID: "4", Name: "Beach Hopping in Bali"},
	}}
	s := newStore(f)
	s.Ensure(context.Background())

	fields := func(r rec) []string { return []string{r.Name} }

	got := s.Filter("beach", fields)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID, "relative order must be preserved")
	assert.Equal(t, "4", got[1].ID)

	assert.Len(t, s.Filter("", fields), 4, "empty term returns everything")
	assert.Empty(t, s.Filter("safari", fields))
}
