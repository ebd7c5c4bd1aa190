package watch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordAndEvents(t *testing.T) {
	c := NewCollector()

	c.Record(Event{Kind: KindAssertionPassed, Passed: true})
	c.Record(Event{
		Kind:    KindAssertionFailed,
		Message: "boom",
	})

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, KindAssertionPassed, events[0].Kind)
	assert.Equal(t, "boom", events[1].Message)
	assert.False(t, events[0].Timestamp.IsZero(),
		"Record must stamp events without a timestamp")
}

func TestCollector_Stats(t *testing.T) {
	c := NewCollector()

	c.Record(Event{Kind: KindAssertionPassed})
	c.Record(Event{Kind: KindAssertionPassed})
	c.Record(Event{Kind: KindAssertionFailed})

	s := c.Stats()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
}

func TestCollector_HandlersNotified(t *testing.T) {
	c := NewCollector()

	var mu sync.Mutex
	var seen []Event
	c.OnEvent(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e)
	})

	c.Record(Event{Kind: KindAssertionFailed, Message: "x"})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, "x", seen[0].Message)
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector()

	c.Record(Event{Kind: KindAssertionFailed})
	c.Reset()

	assert.Empty(t, c.Events())
	assert.Zero(t, c.Stats().Total)
}

func TestCollector_BoundedHistory(t *testing.T) {
	c := NewCollector()

	for i := 0; i < maxEvents+10; i++ {
		c.Record(Event{Kind: KindAssertionPassed})
	}

	assert.Len(t, c.Events(), maxEvents)
	assert.Equal(t, maxEvents+10, c.Stats().Total,
		"stats keep counting past the history bound")
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Record(Event{Kind: KindAssertionPassed})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 160, c.Stats().Total)
}
