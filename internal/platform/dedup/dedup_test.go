package dedup_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pledgerhq/pledger_backend/internal/platform/dedup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoCollapsesConcurrentCallers(t *testing.T) {
	r := dedup.NewRegistry()

	var executions int32
	release := make(chan struct{})

	const callers = 25
	var wg sync.WaitGroup
	results := make([]interface{}, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.Do("list-transactions", func() (interface{}, error) {
				atomic.AddInt32(&executions, 1)
				<-release
				return "settled", nil
			})
		}(i)
	}

	// Let every goroutine reach the gate before releasing the body.
	for r.Len() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), executions, "operation body must execute exactly once")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "settled", results[i])
	}
	assert.Equal(t, 0, r.Len(), "key must be evicted after settlement")
}

func TestDoSharesFailures(t *testing.T) {
	r := dedup.NewRegistry()

	sentinel := errors.New("store unavailable")
	var executions int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Do("balance", func() (interface{}, error) {
				atomic.AddInt32(&executions, 1)
				<-release
				return nil, sentinel
			})
		}(i)
	}

	for r.Len() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), executions)
	for _, err := range errs {
		assert.ErrorIs(t, err, sentinel, "all callers observe the same settled failure")
	}
}

func TestDoEvictsOnCompletion(t *testing.T) {
	r := dedup.NewRegistry()

	var executions int32
	run := func() (interface{}, error) {
		atomic.AddInt32(&executions, 1)
		return nil, nil
	}

	_, err := r.Do("k", run)
	require.NoError(t, err)
	_, err = r.Do("k", run)
	require.NoError(t, err)

	assert.Equal(t, int32(2), executions, "a caller arriving after completion triggers a fresh execution")
	assert.Equal(t, 0, r.Len())
}

func TestReset(t *testing.T) {
	r := dedup.NewRegistry()

	var executions int32
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := r.Do("slow", func() (interface{}, error) {
			atomic.AddInt32(&executions, 1)
			close(started)
			<-release
			return "first", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "first", v)
	}()

	<-started
	assert.Equal(t, 1, r.Len())
	r.Reset()
	assert.Equal(t, 0, r.Len())

	// After reset the key is fresh even though the first flight is still running.
	var wg2 sync.WaitGroup
	wg2.Add(1)
	go func() {
		defer wg2.Done()
		v, err := r.Do("slow", func() (interface{}, error) {
			atomic.AddInt32(&executions, 1)
			return "second", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "second", v)
	}()
	wg2.Wait()

	close(release)
	wg.Wait()
	assert.Equal(t, int32(2), executions)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "op", dedup.Key("op"))
	assert.Equal(t, dedup.Key("op", "a", 1), dedup.Key("op", "a", 1))
	assert.NotEqual(t, dedup.Key("op", "a"), dedup.Key("op", "b"))

	// Unserializable arguments degrade the key to the identifier alone.
	assert.Equal(t, "op", dedup.Key("op", func() {}))
}
