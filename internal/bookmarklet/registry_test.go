package bookmarklet

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	registry := NewPendingRegistry(DefaultPendingTTL)

	var got any
	id := registry.Register(func(result any) { got = result })
	require.Equal(t, 1, registry.Len())

	resolved := registry.Resolve(id, "saved")

	assert.True(t, resolved)
	assert.Equal(t, "saved", got)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryResolveTwiceIsNoop(t *testing.T) {
	registry := NewPendingRegistry(DefaultPendingTTL)

	calls := 0
	id := registry.Register(func(any) { calls++ })

	assert.True(t, registry.Resolve(id, nil))
	assert.False(t, registry.Resolve(id, nil))
	assert.Equal(t, 1, calls)
}

func TestRegistryResolveUnknownID(t *testing.T) {
	registry := NewPendingRegistry(DefaultPendingTTL)

	assert.False(t, registry.Resolve("nonexistent", nil))
}

func TestRegistryExpiredResolveIsNoop(t *testing.T) {
	registry := NewPendingRegistry(10 * time.Millisecond)

	fired := false
	id := registry.Register(func(any) { fired = true })

	time.Sleep(30 * time.Millisecond)

	assert.False(t, registry.Resolve(id, nil))
	assert.False(t, fired)
}

func TestRegistryConcurrentResolveFiresOnce(t *testing.T) {
	registry := NewPendingRegistry(DefaultPendingTTL)

	var calls int32
	id := registry.Register(func(any) { atomic.AddInt32(&calls, 1) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Resolve(id, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegistryCancel(t *testing.T) {
	registry := NewPendingRegistry(DefaultPendingTTL)

	fired := false
	id := registry.Register(func(any) { fired = true })
	registry.Cancel(id)

	assert.False(t, registry.Resolve(id, nil))
	assert.False(t, fired)
}
