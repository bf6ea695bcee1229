package category

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCache(t *testing.T) {
	t.Parallel()

	t.Run("returns the cached regexp", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(2)
		first, err := c.compile(`Chrome/\d+`)
		require.NoError(t, err)
		second, err := c.compile(`Chrome/\d+`)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, c.len())
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(2)
		a, _ := c.compile("a")
		_, _ = c.compile("b")
		_, _ = c.compile("a") // a is now most recent
		_, _ = c.compile("c") // evicts b

		assert.Equal(t, 2, c.len())
		again, err := c.compile("a")
		require.NoError(t, err)
		assert.Same(t, a, again)

		_, inCache := c.items["b"]
		assert.False(t, inCache)
	})

	t.Run("does not cache errors", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(2)
		_, err := c.compile("(")
		require.Error(t, err)
		assert.Zero(t, c.len())
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(8)
		var wg sync.WaitGroup
		for i := range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := c.compile(fmt.Sprintf("p%d", i%12))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.LessOrEqual(t, c.len(), 8)
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { newPatternCache(0) })
	})
}
