package failslot

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotFirstErrorWins(t *testing.T) {
	var s Slot
	assert.False(t, s.Failed())
	assert.NoError(t, s.Err())

	first := errors.New("first")
	assert.True(t, s.Set(first))
	assert.False(t, s.Set(errors.New("second")))

	assert.True(t, s.Failed())
	assert.Same(t, first, s.Err())
}

func TestSlotIgnoresNil(t *testing.T) {
	var s Slot
	assert.False(t, s.Set(nil))
	assert.False(t, s.Failed())
}

func TestSlotConcurrentSetKeepsExactlyOne(t *testing.T) {
	var s Slot
	reported := make([]error, 64)
	for i := range reported {
		reported[i] = fmt.Errorf("worker %d", i)
	}

	var wins sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for _, err := range reported {
		wins.Add(1)
		go func(err error) {
			defer wins.Done()
			if s.Set(err) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(err)
	}
	wins.Wait()

	require.Equal(t, 1, winners)
	assert.Contains(t, reported, s.Err())
}
