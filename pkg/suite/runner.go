package suite

import (
	"fmt"

	"digital.vasic.assertions/pkg/predicate"
)

// Report fails the test once for every failed result, using the
// predicate package's failure signaling. It returns true when
// every result passed.
func Report(
	t predicate.TestingT,
	results []Result,
) bool {
	passed := true

	for _, r := range results {
		if r.Passed {
			continue
		}

		passed = false
		predicate.Fail(t, fmt.Sprintf(
			"check %s on target %s failed: %s",
			r.Check, r.Target, r.Message,
		))
	}

	return passed
}

// Run evaluates a suite's checks against the given values and
// reports the results through t. It returns the individual
// results for further inspection.
func Run(
	t predicate.TestingT,
	registry *Registry,
	s *Suite,
	values map[string]any,
) []Result {
	results := registry.EvaluateAll(s.Checks, values)
	Report(t, results)
	return results
}
