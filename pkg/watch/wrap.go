package watch

import (
	"fmt"

	"digital.vasic.assertions/pkg/predicate"
)

// namer is implemented by *testing.T; when available the test
// name is attached to recorded events.
type namer interface {
	Name() string
}

// wrappedT is a pass-through TestingT that records every
// failure into a Collector before delegating to the inner t.
type wrappedT struct {
	inner     predicate.TestingT
	collector *Collector
}

// Wrap returns a TestingT that records an assertion_failed
// event for every Errorf call and then delegates to t. Helper
// and FailNow are forwarded when the inner t provides them, so
// wrapped assertions keep their attribution and abort
// semantics.
func Wrap(
	t predicate.TestingT,
	collector *Collector,
) predicate.TestingT {
	return &wrappedT{inner: t, collector: collector}
}

// Errorf records the failure and delegates.
func (w *wrappedT) Errorf(format string, args ...any) {
	w.collector.Record(Event{
		Kind:    KindAssertionFailed,
		Test:    w.testName(),
		Message: fmt.Sprintf(format, args...),
		Passed:  false,
	})

	w.inner.Errorf(format, args...)
}

// Helper forwards to the inner t when supported.
func (w *wrappedT) Helper() {
	if h, ok := w.inner.(interface{ Helper() }); ok {
		h.Helper()
	}
}

// FailNow forwards to the inner t when supported.
func (w *wrappedT) FailNow() {
	if f, ok := w.inner.(interface{ FailNow() }); ok {
		f.FailNow()
	}
}

// testName resolves the inner test's name, if any.
func (w *wrappedT) testName() string {
	if n, ok := w.inner.(namer); ok {
		return n.Name()
	}
	return ""
}
