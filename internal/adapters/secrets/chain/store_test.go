package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	passstore "huddle/internal/adapters/secrets/pass"
	"huddle/internal/domain"
)

type fakeStore struct {
	values map[string]string
	err    error
	puts   int
	dels   int
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.values[key]
	if !ok {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return v, nil
}

func (f *fakeStore) Put(_ context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	f.puts++
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.values, key)
	f.dels++
	return nil
}

func TestGetPrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := &fakeStore{values: map[string]string{"k": "from-primary"}}
	fallback := &fakeStore{values: map[string]string{"k": "from-fallback"}}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "from-primary", got)
}

func TestGetFallsThroughWhenPrimaryUnavailable(t *testing.T) {
	t.Parallel()

	primary := &fakeStore{err: passstore.ErrUnavailable}
	fallback := &fakeStore{values: map[string]string{"k": "from-fallback"}}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "from-fallback", got)
}

func TestGetMissingEverywhereStillMatchesSentinel(t *testing.T) {
	t.Parallel()

	store, err := NewStore(&fakeStore{}, &fakeStore{})
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestGetDoesNotFallThroughOnCancelledContext(t *testing.T) {
	t.Parallel()

	primary := &fakeStore{err: context.Canceled}
	fallback := &fakeStore{values: map[string]string{"k": "v"}}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPutFallsBackOnPrimaryFailure(t *testing.T) {
	t.Parallel()

	primary := &fakeStore{err: errors.New("keyring locked")}
	fallback := &fakeStore{}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "k", "v"))
	assert.Equal(t, 1, fallback.puts)
}

func TestDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := &fakeStore{values: map[string]string{"k": "v"}}
	fallback := &fakeStore{values: map[string]string{"k": "v"}}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Empty(t, primary.values)
	assert.Empty(t, fallback.values)
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, &fakeStore{})
	assert.Error(t, err)
	_, err = NewStore(&fakeStore{}, nil)
	assert.Error(t, err)
}
