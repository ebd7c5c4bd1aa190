// Package watch provides live observation of assertion
// activity: a thread-safe event collector, a TestingT wrapper
// that records failures as events, and a WebSocket server that
// broadcasts events to connected viewers.
package watch

import "time"

// Kind represents the type of assertion event.
type Kind string

const (
	KindAssertionFailed Kind = "assertion_failed"
	KindAssertionPassed Kind = "assertion_passed"
	KindSuiteFinished   Kind = "suite_finished"
)

// Event represents a single assertion event.
type Event struct {
	Kind      Kind      `json:"kind"`
	Test      string    `json:"test,omitempty"`
	Message   string    `json:"message,omitempty"`
	Passed    bool      `json:"passed"`
	Timestamp time.Time `json:"timestamp"`
}
