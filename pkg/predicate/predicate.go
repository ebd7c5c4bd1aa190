// Package predicate provides predicate-based assertion helpers
// for Go tests. An assertion evaluates a caller-supplied
// boolean-valued function against a value and, if the result is
// not the expected one, fails the test with a standardized
// message through the host framework's TestingT.
package predicate

// TestingT is the subset of *testing.T the helpers need to
// signal failure. It matches the interface the stretchr/testify
// tooling uses, so both libraries compose in a single test.
type TestingT interface {
	Errorf(format string, args ...any)
}

// tHelper is implemented by *testing.T. When available, Helper
// is called so a failure is attributed to the caller's line.
type tHelper interface {
	Helper()
}

// failNower is implemented by *testing.T. Requirements uses it
// to abort the running test after reporting a failure.
type failNower interface {
	FailNow()
}

// Matches asserts that predicate(value) is true. On failure the
// test is marked failed with the message
//
//	expected: matching predicate but was: <VALUE>
//
// where VALUE is the value's default textual representation,
// optionally prefixed with a caller message (see Fail for the
// accepted message forms). The predicate is evaluated exactly
// once, and the message arguments are only touched on the
// failure path.
func Matches[T any](
	t TestingT,
	predicate func(T) bool,
	value T,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if predicate(value) {
		return true
	}

	return Fail(t, matchingFailure(value), message...)
}

// DoesNotMatch asserts that predicate(value) is false. On
// failure the test is marked failed with the message
//
//	expected: not matching predicate but was: <VALUE>
//
// following the same prefixing and laziness rules as Matches.
func DoesNotMatch[T any](
	t TestingT,
	predicate func(T) bool,
	value T,
	message ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !predicate(value) {
		return true
	}

	return Fail(t, notMatchingFailure(value), message...)
}

// Fail marks the test failed with the given base message,
// prefixed with the resolved caller message when one is
// supplied. It always returns false so callers can propagate
// the assertion result.
func Fail(t TestingT, base string, message ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	t.Errorf("%s", prefixed(base, message))
	return false
}
