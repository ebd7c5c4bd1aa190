package predicate

// The typed variants pin the generic type parameter so untyped
// constants at the call site resolve to the intended width:
// Matches(t, pred, 5) infers int, while MatchesInt64(t, pred, 5)
// passes an int64. The contract and message formatting are
// identical to the generic forms.

// MatchesInt32 asserts that predicate(value) is true for an
// int32 value.
func MatchesInt32(
	t TestingT,
	predicate func(int32) bool,
	value int32,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Matches(t, predicate, value, message...)
}

// MatchesInt64 asserts that predicate(value) is true for an
// int64 value.
func MatchesInt64(
	t TestingT,
	predicate func(int64) bool,
	value int64,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Matches(t, predicate, value, message...)
}

// MatchesFloat64 asserts that predicate(value) is true for a
// float64 value.
func MatchesFloat64(
	t TestingT,
	predicate func(float64) bool,
	value float64,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Matches(t, predicate, value, message...)
}

// DoesNotMatchInt32 asserts that predicate(value) is false for
// an int32 value.
func DoesNotMatchInt32(
	t TestingT,
	predicate func(int32) bool,
	value int32,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatch(t, predicate, value, message...)
}

// DoesNotMatchInt64 asserts that predicate(value) is false for
// an int64 value.
func DoesNotMatchInt64(
	t TestingT,
	predicate func(int64) bool,
	value int64,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatch(t, predicate, value, message...)
}

// DoesNotMatchFloat64 asserts that predicate(value) is false
// for a float64 value.
func DoesNotMatchFloat64(
	t TestingT,
	predicate func(float64) bool,
	value float64,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return DoesNotMatch(t, predicate, value, message...)
}
