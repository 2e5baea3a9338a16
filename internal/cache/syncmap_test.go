package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap_GetOrCompute(t *testing.T) {
	m := NewSyncMap[int, string]()
	calls := 0
	compute := func(k int) string {
		calls++
		return strconv.Itoa(k)
	}
	assert.Equal(t, "1", m.GetOrCompute(1, compute))
	assert.Equal(t, "1", m.GetOrCompute(1, compute))
	assert.Equal(t, 1, calls)
	v, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = m.Get(2)
	assert.False(t, ok)
}

func TestSyncMap_Concurrent(t *testing.T) {
	m := NewSyncMap[int, int]()
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.GetOrCompute(j, func(k int) int { return k * 2 })
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, m.Len())
	v, _ := m.Get(42)
	assert.Equal(t, 84, v)
}
