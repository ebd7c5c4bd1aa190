package predicate

// Requirements mirrors Assertions but aborts the running test
// after a failed assertion when the bound TestingT provides
// FailNow, the way *testing.T does. The failure message is
// identical to the non-aborting form.
type Requirements struct {
	t TestingT
}

// Require creates a Requirements bound to the given TestingT.
func Require(t TestingT) *Requirements {
	return &Requirements{t: t}
}

// failNow aborts the test if the bound TestingT supports it.
func (r *Requirements) failNow() {
	if f, ok := r.t.(failNower); ok {
		f.FailNow()
	}
}

// Matches requires that predicate(value) is true.
func (r *Requirements) Matches(
	predicate func(any) bool,
	value any,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if Matches(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// DoesNotMatch requires that predicate(value) is false.
func (r *Requirements) DoesNotMatch(
	predicate func(any) bool,
	value any,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if DoesNotMatch(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// MatchesInt32 requires that predicate(value) is true for an
// int32 value.
func (r *Requirements) MatchesInt32(
	predicate func(int32) bool,
	value int32,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if MatchesInt32(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// MatchesInt64 requires that predicate(value) is true for an
// int64 value.
func (r *Requirements) MatchesInt64(
	predicate func(int64) bool,
	value int64,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if MatchesInt64(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// MatchesFloat64 requires that predicate(value) is true for a
// float64 value.
func (r *Requirements) MatchesFloat64(
	predicate func(float64) bool,
	value float64,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if MatchesFloat64(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// DoesNotMatchInt32 requires that predicate(value) is false for
// an int32 value.
func (r *Requirements) DoesNotMatchInt32(
	predicate func(int32) bool,
	value int32,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if DoesNotMatchInt32(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// DoesNotMatchInt64 requires that predicate(value) is false for
// an int64 value.
func (r *Requirements) DoesNotMatchInt64(
	predicate func(int64) bool,
	value int64,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if DoesNotMatchInt64(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}

// DoesNotMatchFloat64 requires that predicate(value) is false
// for a float64 value.
func (r *Requirements) DoesNotMatchFloat64(
	predicate func(float64) bool,
	value float64,
	message ...any,
) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	if DoesNotMatchFloat64(r.t, predicate, value, message...) {
		return
	}
	r.failNow()
}
