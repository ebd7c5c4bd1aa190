package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_RegistersAllBuiltins(t *testing.T) {
	r := NewRegistry()

	builtins := []string{
		"not_empty", "empty", "contains", "contains_any",
		"matches_regex", "min_length", "max_length",
		"one_of", "positive", "negative", "is_nan",
		"in_range", "min_count", "exact_count",
		"no_duplicates", "all_pass", "any_pass",
	}

	for _, name := range builtins {
		assert.True(t, r.Has(name),
			"missing built-in check: %s", name)
	}
}

func TestRegistry_Register_Success(t *testing.T) {
	r := NewRegistry()

	err := r.Register("custom", func(
		_ Definition, _ any,
	) (bool, string) {
		return true, "custom ok"
	})

	require.NoError(t, err)
	assert.True(t, r.Has("custom"))
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()

	err := r.Register("not_empty", func(
		_ Definition, _ any,
	) (bool, string) {
		return true, "dup"
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_Evaluate_UnknownCheck(t *testing.T) {
	r := NewRegistry()

	res := r.Evaluate(Definition{
		Check:  "nonexistent",
		Target: "x",
	}, "hello")

	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, "unknown check")
}

func TestRegistry_Evaluate_SetsFields(t *testing.T) {
	r := NewRegistry()

	res := r.Evaluate(Definition{
		Check:  "contains",
		Target: "response",
		Value:  "world",
	}, "hello world")

	assert.True(t, res.Passed)
	assert.Equal(t, "contains", res.Check)
	assert.Equal(t, "response", res.Target)
	assert.Equal(t, "world", res.Expected)
	assert.Equal(t, "hello world", res.Actual)
}

func TestRegistry_EvaluateAll_MissingTarget(t *testing.T) {
	r := NewRegistry()

	results := r.EvaluateAll(
		[]Definition{
			{Check: "not_empty", Target: "missing"},
		},
		map[string]any{"other": "value"},
	)

	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "target not found")
}

func TestRegistry_EvaluateAll_MultipleChecks(t *testing.T) {
	r := NewRegistry()

	results := r.EvaluateAll(
		[]Definition{
			{Check: "not_empty", Target: "a"},
			{Check: "contains", Target: "a", Value: "hello"},
			{Check: "min_length", Target: "a", Value: 3},
		},
		map[string]any{"a": "hello world"},
	)

	require.Len(t, results, 3)
	for _, res := range results {
		assert.True(t, res.Passed,
			"check %s failed: %s", res.Check, res.Message)
	}
}
