package metadata

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_GetAbsent(t *testing.T) {
	r := NewMemoryRepository()

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryRepository_SetGetOverwrite(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"k": []byte("old")}))
	require.NoError(t, r.SetMany(ctx, map[string][]byte{"k": []byte("new")}))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestMemoryRepository_CopiesValues(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.SetMany(ctx, map[string][]byte{"k": in}))
	in[0] = 'X'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryRepository_ManyAndClear(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"a": {1}, "b": {2}, "c": {3}}))
	require.NoError(t, r.DeleteMany(ctx, "a", "b"))
	require.NoError(t, r.DeleteMany(ctx, "missing"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"c": {3}}, m)

	require.NoError(t, r.Clear(ctx))

	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.SetMany(ctx, map[string][]byte{"t": {1}, "u": {2}})
			_, _ = r.Get(ctx, "t")
			_ = r.DeleteMany(ctx, "t", "u")
		}()
	}
	wg.Wait()
}
