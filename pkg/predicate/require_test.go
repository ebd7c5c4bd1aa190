package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fatalT records FailNow calls in addition to failures.
type fatalT struct {
	captureT
	aborted bool
}

func (f *fatalT) FailNow() {
	f.aborted = true
}

func TestRequirements_Matches_Success(t *testing.T) {
	ft := &fatalT{}
	r := Require(ft)

	r.Matches(notNil, "value")

	assert.False(t, ft.failed)
	assert.False(t, ft.aborted)
}

func TestRequirements_Matches_FailureAborts(t *testing.T) {
	ft := &fatalT{}
	r := Require(ft)

	r.Matches(notNil, nil)

	assert.True(t, ft.failed)
	assert.True(t, ft.aborted)
	require.Len(t, ft.messages, 1)
	assert.Equal(t,
		"expected: matching predicate but was: <<nil>>",
		ft.messages[0],
	)
}

func TestRequirements_DoesNotMatch_FailureAborts(t *testing.T) {
	ft := &fatalT{}
	r := Require(ft)

	r.DoesNotMatch(notNil, "value", "must be nil")

	assert.True(t, ft.aborted)
	require.Len(t, ft.messages, 1)
	assert.Equal(t,
		"must be nil ==> expected: not matching predicate but was: <value>",
		ft.messages[0],
	)
}

func TestRequirements_TypedVariants_Abort(t *testing.T) {
	positive32 := func(n int32) bool { return n > 0 }
	positive64 := func(n int64) bool { return n > 0 }

	cases := []struct {
		name string
		run  func(r *Requirements)
	}{
		{"MatchesInt32", func(r *Requirements) {
			r.MatchesInt32(positive32, -1)
		}},
		{"MatchesInt64", func(r *Requirements) {
			r.MatchesInt64(positive64, -1)
		}},
		{"MatchesFloat64", func(r *Requirements) {
			r.MatchesFloat64(math.IsNaN, 0)
		}},
		{"DoesNotMatchInt32", func(r *Requirements) {
			r.DoesNotMatchInt32(positive32, 1)
		}},
		{"DoesNotMatchInt64", func(r *Requirements) {
			r.DoesNotMatchInt64(positive64, 1)
		}},
		{"DoesNotMatchFloat64", func(r *Requirements) {
			r.DoesNotMatchFloat64(math.IsNaN, math.NaN())
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ft := &fatalT{}
			tc.run(Require(ft))
			assert.True(t, ft.aborted)
		})
	}
}

func TestRequirements_NoFailNowSupport(t *testing.T) {
	// A TestingT without FailNow still gets the failure report;
	// the abort is simply skipped.
	ct := &captureT{}
	r := Require(ct)

	r.Matches(notNil, nil)

	assert.True(t, ct.failed)
}
