// Package suite provides declarative, data-driven check suites
// on top of the predicate assertion helpers: named checks over
// dynamic values, loadable from YAML or JSON files and reported
// through the host test framework.
package suite

// Definition describes a single named check to evaluate against
// a target value.
type Definition struct {
	// Check is the registered check name (e.g. "contains",
	// "not_empty", "min_length").
	Check string `yaml:"check" json:"check"`

	// Target is the name of the value to check.
	Target string `yaml:"target" json:"target"`

	// Value is the expected value for single-value checks.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`

	// Values holds expected values for multi-value checks
	// (e.g. "contains_any", "one_of", "in_range").
	Values []any `yaml:"values,omitempty" json:"values,omitempty"`

	// Message is a human-readable description shown on failure.
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}

// Result captures the outcome of evaluating a single check.
type Result struct {
	// Check is the check name that was evaluated.
	Check string `json:"check"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the check expected.
	Expected any `json:"expected"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// Check is a function that evaluates a single check definition
// against a concrete value. It returns whether the check passed
// and a human-readable explanation.
type Check func(def Definition, value any) (bool, string)
