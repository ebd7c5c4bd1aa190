package watch

import (
	"sync"
	"time"
)

// maxEvents bounds the collector's event history; the oldest
// events are discarded once the bound is reached.
const maxEvents = 1024

// Collector captures assertion events and aggregate counts. It
// is safe for concurrent use.
type Collector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    Stats
}

// Stats holds aggregate event statistics.
type Stats struct {
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		events: make([]Event, 0, 64),
		stats:  Stats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each recorded
// event. Handlers run outside the collector lock.
func (c *Collector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Record stores an event and notifies all handlers.
func (c *Collector) Record(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	if len(c.events) >= maxEvents {
		c.events = c.events[1:]
	}
	c.events = append(c.events, event)

	c.stats.Total++
	switch event.Kind {
	case KindAssertionPassed:
		c.stats.Passed++
	case KindAssertionFailed:
		c.stats.Failed++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)

	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Events returns a copy of all collected events.
func (c *Collector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *Collector) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = Stats{StartTime: time.Now()}
}
