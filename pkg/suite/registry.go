package suite

import (
	"fmt"
	"sync"
)

// Registry maps check names to Check functions. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
}

// NewRegistry creates a Registry with all built-in checks
// pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		checks: make(map[string]Check),
	}
	r.registerDefaults()
	return r
}

// registerDefaults registers the built-in checks.
func (r *Registry) registerDefaults() {
	r.checks["not_empty"] = checkNotEmpty
	r.checks["empty"] = checkEmpty
	r.checks["contains"] = checkContains
	r.checks["contains_any"] = checkContainsAny
	r.checks["matches_regex"] = checkMatchesRegex
	r.checks["min_length"] = checkMinLength
	r.checks["max_length"] = checkMaxLength
	r.checks["one_of"] = checkOneOf
	r.checks["positive"] = checkPositive
	r.checks["negative"] = checkNegative
	r.checks["is_nan"] = checkIsNaN
	r.checks["in_range"] = checkInRange
	r.checks["min_count"] = checkMinCount
	r.checks["exact_count"] = checkExactCount
	r.checks["no_duplicates"] = checkNoDuplicates
	r.checks["all_pass"] = checkAllPass
	r.checks["any_pass"] = checkAnyPass
}

// Register adds a custom check under the given name. Returns an
// error if the name is already registered.
func (r *Registry) Register(name string, check Check) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checks[name]; exists {
		return fmt.Errorf(
			"check already registered: %s", name,
		)
	}

	r.checks[name] = check
	return nil
}

// Has returns true if the given check name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.checks[name]
	return exists
}

// Evaluate runs a single check definition against the provided
// value.
func (r *Registry) Evaluate(def Definition, value any) Result {
	r.mu.RLock()
	check, exists := r.checks[def.Check]
	r.mu.RUnlock()

	if !exists {
		return Result{
			Check:  def.Check,
			Target: def.Target,
			Passed: false,
			Message: fmt.Sprintf(
				"unknown check: %s", def.Check,
			),
		}
	}

	passed, message := check(def, value)

	return Result{
		Check:    def.Check,
		Target:   def.Target,
		Expected: def.Value,
		Actual:   value,
		Passed:   passed,
		Message:  message,
	}
}

// EvaluateAll runs multiple check definitions against a map of
// named values. Each definition's Target field is the key into
// the values map. A missing target fails the check.
func (r *Registry) EvaluateAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, d := range defs {
		value, exists := values[d.Target]
		if !exists {
			results = append(results, Result{
				Check:  d.Check,
				Target: d.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"target not found: %s", d.Target,
				),
			})
			continue
		}

		results = append(results, r.Evaluate(d, value))
	}

	return results
}
