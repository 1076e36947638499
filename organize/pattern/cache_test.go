package pattern

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Compile(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	first, err := cache.Compile("{a}.{b}", true)
	require.NoError(t, err)
	second, err := cache.Compile("{a}.{b}", true)
	require.NoError(t, err)
	assert.Same(t, first, second)

	folded, err := cache.Compile("{a}.{b}", false)
	require.NoError(t, err)
	assert.NotSame(t, first, folded)
	assert.EqualValues(t, 2, cache.Len())

	_, err = cache.Compile("{broken", true)
	assert.ErrorIs(t, err, ErrSyntax)
	assert.EqualValues(t, 2, cache.Len())

	_, err = cache.Compile("*", true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cache.Len())
}

func TestCache_Concurrent(t *testing.T) {
	cache, err := NewCache(0)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := cache.Compile("IMG_{n}", false)
			if assert.NoError(t, err) {
				captures, ok := p.Match("img_0001")
				assert.True(t, ok)
				assert.EqualValues(t, map[string]string{"n": "0001"}, captures.Map())
			}
		}()
	}
	wg.Wait()
}
