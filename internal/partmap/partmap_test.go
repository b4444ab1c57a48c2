package partmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoad(t *testing.T) {
	pm := New[string, int](3, 4)
	require.Equal(t, 3, pm.NumPart())

	_, ok := pm.Load(0, "a")
	assert.False(t, ok)

	v, stored := pm.Store(0, "a", 1)
	assert.True(t, stored)
	assert.Equal(t, 1, v)

	v, stored = pm.Store(0, "a", 2)
	assert.False(t, stored, "existing entries are never overwritten")
	assert.Equal(t, 1, v)

	_, ok = pm.Load(1, "a")
	assert.False(t, ok, "parts are independent")

	pm.Store(2, "a", 3)
	assert.Equal(t, 1, pm.Len(0))
	assert.Equal(t, 0, pm.Len(1))
	assert.Equal(t, 2, pm.Size())

	pm.Clear()
	assert.Equal(t, 0, pm.Size())
}

func TestConcurrentStore(t *testing.T) {
	const numWorker = 8
	pm := New[int, int](2, 0)

	var wg sync.WaitGroup
	wg.Add(numWorker)
	for w := 0; w < numWorker; w++ {
		go func(w int) {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				pm.Store(k%2, k, k*10)
				if v, ok := pm.Load(k%2, k); ok {
					assert.Equal(t, k*10, v)
				}
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 100, pm.Size())
	assert.Equal(t, 50, pm.Len(0))
}
