package predicate

// Assertions binds a TestingT once so call sites drop the
// repeated first argument. Go methods cannot carry their own
// type parameters, so the untyped method form takes a
// func(any) bool; the typed methods keep their widths.
type Assertions struct {
	t TestingT
}

// New creates an Assertions bound to the given TestingT.
func New(t TestingT) *Assertions {
	return &Assertions{t: t}
}

// Matches asserts that predicate(value) is true.
func (a *Assertions) Matches(
	predicate func(any) bool,
	value any,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return Matches(a.t, predicate, value, message...)
}

// DoesNotMatch asserts that predicate(value) is false.
func (a *Assertions) DoesNotMatch(
	predicate func(any) bool,
	value any,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatch(a.t, predicate, value, message...)
}

// MatchesInt32 asserts that predicate(value) is true for an
// int32 value.
func (a *Assertions) MatchesInt32(
	predicate func(int32) bool,
	value int32,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return MatchesInt32(a.t, predicate, value, message...)
}

// MatchesInt64 asserts that predicate(value) is true for an
// int64 value.
func (a *Assertions) MatchesInt64(
	predicate func(int64) bool,
	value int64,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return MatchesInt64(a.t, predicate, value, message...)
}

// MatchesFloat64 asserts that predicate(value) is true for a
// float64 value.
func (a *Assertions) MatchesFloat64(
	predicate func(float64) bool,
	value float64,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return MatchesFloat64(a.t, predicate, value, message...)
}

// DoesNotMatchInt32 asserts that predicate(value) is false for
// an int32 value.
func (a *Assertions) DoesNotMatchInt32(
	predicate func(int32) bool,
	value int32,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatchInt32(a.t, predicate, value, message...)
}

// DoesNotMatchInt64 asserts that predicate(value) is false for
// an int64 value.
func (a *Assertions) DoesNotMatchInt64(
	predicate func(int64) bool,
	value int64,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatchInt64(a.t, predicate, value, message...)
}

// DoesNotMatchFloat64 asserts that predicate(value) is false
// for a float64 value.
func (a *Assertions) DoesNotMatchFloat64(
	predicate func(float64) bool,
	value float64,
	message ...any,
) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatchFloat64(a.t, predicate, value, message...)
}
