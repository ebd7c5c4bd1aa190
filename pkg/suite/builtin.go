package suite

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// checkNotEmpty passes when a value is non-nil and non-empty.
func checkNotEmpty(
	_ Definition,
	value any,
) (bool, string) {
	if value == nil {
		return false, "value is nil"
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return false, "string is empty"
		}
	case []any:
		if len(v) == 0 {
			return false, "array is empty"
		}
	case map[string]any:
		if len(v) == 0 {
			return false, "map is empty"
		}
	}

	return true, "value is not empty"
}

// checkEmpty is the negation of not_empty.
func checkEmpty(
	def Definition,
	value any,
) (bool, string) {
	passed, _ := checkNotEmpty(def, value)
	if passed {
		return false, fmt.Sprintf(
			"value is not empty: %v", value,
		)
	}
	return true, "value is empty"
}

// checkContains passes when a string value contains the
// expected substring (case-insensitive).
func checkContains(
	def Definition,
	value any,
) (bool, string) {
	str, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}

	expected, ok := def.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	if strings.Contains(
		strings.ToLower(str),
		strings.ToLower(expected),
	) {
		return true, fmt.Sprintf("contains '%s'", expected)
	}

	return false, fmt.Sprintf(
		"does not contain '%s'", expected,
	)
}

// checkContainsAny passes when a string value contains at least
// one of the expected substrings.
func checkContainsAny(
	def Definition,
	value any,
) (bool, string) {
	str, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}

	lower := strings.ToLower(str)
	values := expectedStrings(def)

	for _, expected := range values {
		trimmed := strings.TrimSpace(expected)
		if strings.Contains(
			lower, strings.ToLower(trimmed),
		) {
			return true, fmt.Sprintf(
				"contains '%s'", expected,
			)
		}
	}

	return false, fmt.Sprintf(
		"does not contain any of: %v", values,
	)
}

// checkMatchesRegex passes when a string value matches the
// expected regular expression.
func checkMatchesRegex(
	def Definition,
	value any,
) (bool, string) {
	str, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}

	pattern, ok := def.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Sprintf(
			"invalid regex '%s': %v", pattern, err,
		)
	}

	if re.MatchString(str) {
		return true, fmt.Sprintf("matches /%s/", pattern)
	}

	return false, fmt.Sprintf(
		"does not match /%s/", pattern,
	)
}

// checkMinLength passes when a string value meets a minimum
// character length.
func checkMinLength(
	def Definition,
	value any,
) (bool, string) {
	str, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}

	minLength, ok := toInt(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	actual := len(str)
	if actual >= minLength {
		return true, fmt.Sprintf(
			"length %d >= %d", actual, minLength,
		)
	}

	return false, fmt.Sprintf(
		"length %d < %d", actual, minLength,
	)
}

// checkMaxLength passes when a string value does not exceed a
// maximum character length.
func checkMaxLength(
	def Definition,
	value any,
) (bool, string) {
	str, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}

	maxLength, ok := toInt(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	actual := len(str)
	if actual <= maxLength {
		return true, fmt.Sprintf(
			"length %d <= %d", actual, maxLength,
		)
	}

	return false, fmt.Sprintf(
		"length %d > %d", actual, maxLength,
	)
}

// checkOneOf passes when a value equals (via %v rendering) one
// of the expected values.
func checkOneOf(
	def Definition,
	value any,
) (bool, string) {
	candidates := def.Values
	if candidates == nil {
		if list, ok := def.Value.([]any); ok {
			candidates = list
		}
	}

	if len(candidates) == 0 {
		return false, "no expected values given"
	}

	rendered := fmt.Sprintf("%v", value)
	for _, c := range candidates {
		if fmt.Sprintf("%v", c) == rendered {
			return true, fmt.Sprintf(
				"value is '%v'", value,
			)
		}
	}

	return false, fmt.Sprintf(
		"value '%v' is not one of %v", value, candidates,
	)
}

// checkPositive passes when a numeric value is greater than
// zero.
func checkPositive(
	_ Definition,
	value any,
) (bool, string) {
	n, ok := toFloat64(value)
	if !ok {
		return false, "value is not a number"
	}

	if n > 0 {
		return true, fmt.Sprintf("%v > 0", value)
	}

	return false, fmt.Sprintf("%v is not positive", value)
}

// checkNegative passes when a numeric value is less than zero.
func checkNegative(
	_ Definition,
	value any,
) (bool, string) {
	n, ok := toFloat64(value)
	if !ok {
		return false, "value is not a number"
	}

	if n < 0 {
		return true, fmt.Sprintf("%v < 0", value)
	}

	return false, fmt.Sprintf("%v is not negative", value)
}

// checkIsNaN passes when a floating-point value is NaN.
func checkIsNaN(
	_ Definition,
	value any,
) (bool, string) {
	n, ok := toFloat64(value)
	if !ok {
		return false, "value is not a number"
	}

	if math.IsNaN(n) {
		return true, "value is NaN"
	}

	return false, fmt.Sprintf("%v is not NaN", value)
}

// checkInRange passes when a numeric value lies within the
// inclusive [min, max] range given by the first two expected
// values.
func checkInRange(
	def Definition,
	value any,
) (bool, string) {
	n, ok := toFloat64(value)
	if !ok {
		return false, "value is not a number"
	}

	if len(def.Values) < 2 {
		return false, "range requires two expected values"
	}

	low, okLow := toFloat64(def.Values[0])
	high, okHigh := toFloat64(def.Values[1])
	if !okLow || !okHigh {
		return false, "range bounds are not numbers"
	}

	if n >= low && n <= high {
		return true, fmt.Sprintf(
			"%v within [%v, %v]", value, low, high,
		)
	}

	return false, fmt.Sprintf(
		"%v outside [%v, %v]", value, low, high,
	)
}

// checkMinCount passes when a countable value (number, slice,
// or map) meets a minimum count.
func checkMinCount(
	def Definition,
	value any,
) (bool, string) {
	count, ok := toCount(value)
	if !ok {
		return false, "value is not countable"
	}

	minCount, ok := toInt(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	if count >= minCount {
		return true, fmt.Sprintf(
			"count %d >= %d", count, minCount,
		)
	}

	return false, fmt.Sprintf(
		"count %d < %d", count, minCount,
	)
}

// checkExactCount passes when a countable value exactly matches
// the expected count.
func checkExactCount(
	def Definition,
	value any,
) (bool, string) {
	count, ok := toCount(value)
	if !ok {
		return false, "value is not countable"
	}

	expected, ok := toInt(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	if count == expected {
		return true, fmt.Sprintf(
			"count %d == %d", count, expected,
		)
	}

	return false, fmt.Sprintf(
		"count %d != %d", count, expected,
	)
}

// checkNoDuplicates passes when a slice contains no duplicate
// values (compared via their %v rendering).
func checkNoDuplicates(
	_ Definition,
	value any,
) (bool, string) {
	items, ok := value.([]any)
	if !ok {
		return false, "value is not an array"
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := fmt.Sprintf("%v", item)
		if seen[key] {
			return false, fmt.Sprintf(
				"duplicate found: %s", key,
			)
		}
		seen[key] = true
	}

	return true, "no duplicates found"
}

// checkAllPass passes when every Result in a slice has passed.
func checkAllPass(
	_ Definition,
	value any,
) (bool, string) {
	results, ok := value.([]Result)
	if !ok {
		return false, "value is not a slice of results"
	}

	for _, r := range results {
		if !r.Passed {
			return false, fmt.Sprintf(
				"check '%s' failed: %s",
				r.Check, r.Message,
			)
		}
	}

	return true, fmt.Sprintf(
		"all %d checks passed", len(results),
	)
}

// checkAnyPass passes when at least one Result in a slice has
// passed.
func checkAnyPass(
	_ Definition,
	value any,
) (bool, string) {
	results, ok := value.([]Result)
	if !ok {
		return false, "value is not a slice of results"
	}

	for _, r := range results {
		if r.Passed {
			return true, fmt.Sprintf(
				"check '%s' passed", r.Check,
			)
		}
	}

	return false, fmt.Sprintf(
		"none of %d checks passed", len(results),
	)
}

// --- helpers ---

// expectedStrings collects the expected string values of a
// definition from Value (single string or comma-separated list)
// or Values.
func expectedStrings(def Definition) []string {
	var values []string

	switch v := def.Value.(type) {
	case string:
		values = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	case []string:
		values = v
	default:
		for _, item := range def.Values {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	}

	return values
}

// toInt converts an any value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// toFloat64 converts an any value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toCount extracts an integer count from a value. It handles
// numbers, []any, and map[string]any.
func toCount(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case []any:
		return len(val), true
	case map[string]any:
		return len(val), true
	}
	return 0, false
}
