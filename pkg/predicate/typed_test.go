package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesInt32_Success(t *testing.T) {
	ct := &captureT{}

	ok := MatchesInt32(ct, func(n int32) bool {
		return n > 0
	}, 7)

	assert.True(t, ok)
	assert.False(t, ct.failed)
}

func TestMatchesInt32_Failure(t *testing.T) {
	ct := &captureT{}

	MatchesInt32(ct, func(n int32) bool {
		return n > 0
	}, -7)

	require.Len(t, ct.messages, 1)
	assert.Equal(t,
		"expected: matching predicate but was: <-7>",
		ct.messages[0],
	)
}

func TestMatchesInt64_Failure(t *testing.T) {
	ct := &captureT{}

	MatchesInt64(ct, func(n int64) bool {
		return n == 0
	}, 9223372036854775807)

	require.Len(t, ct.messages, 1)
	assert.Equal(t,
		"expected: matching predicate but was: <9223372036854775807>",
		ct.messages[0],
	)
}

func TestMatchesFloat64_Failure(t *testing.T) {
	ct := &captureT{}

	MatchesFloat64(ct, math.IsNaN, 1.5)

	require.Len(t, ct.messages, 1)
	assert.Equal(t,
		"expected: matching predicate but was: <1.5>",
		ct.messages[0],
	)
}

func TestDoesNotMatchFloat64_NaN(t *testing.T) {
	ct := &captureT{}

	ok := DoesNotMatchFloat64(ct, math.IsNaN, math.NaN())

	assert.False(t, ok)
	require.Len(t, ct.messages, 1)
	assert.Equal(t,
		"expected: not matching predicate but was: <NaN>",
		ct.messages[0],
	)
}

func TestDoesNotMatchInt32_Success(t *testing.T) {
	ct := &captureT{}

	ok := DoesNotMatchInt32(ct, func(n int32) bool {
		return n < 0
	}, 1)

	assert.True(t, ok)
}

func TestDoesNotMatchInt64_Failure_WithMessage(t *testing.T) {
	ct := &captureT{}

	DoesNotMatchInt64(ct, func(n int64) bool {
		return n%2 == 0
	}, 4, "parity")

	require.Len(t, ct.messages, 1)
	assert.Equal(t,
		"parity ==> expected: not matching predicate but was: <4>",
		ct.messages[0],
	)
}
