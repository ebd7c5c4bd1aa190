package suite

import "fmt"

// AllOf returns a Check that runs a fixed set of sub-checks
// against the incoming value and requires every one to pass.
func AllOf(
	registry *Registry,
	subChecks []Definition,
) Check {
	return func(_ Definition, value any) (bool, string) {
		for _, d := range subChecks {
			r := registry.Evaluate(d, value)
			if !r.Passed {
				return false, fmt.Sprintf(
					"check '%s' failed: %s",
					r.Check, r.Message,
				)
			}
		}

		return true, fmt.Sprintf(
			"all %d checks passed", len(subChecks),
		)
	}
}

// AnyOf returns a Check that runs a fixed set of sub-checks
// against the incoming value and requires at least one to pass.
func AnyOf(
	registry *Registry,
	subChecks []Definition,
) Check {
	return func(_ Definition, value any) (bool, string) {
		for _, d := range subChecks {
			r := registry.Evaluate(d, value)
			if r.Passed {
				return true, fmt.Sprintf(
					"check '%s' passed", r.Check,
				)
			}
		}

		return false, fmt.Sprintf(
			"none of %d checks passed", len(subChecks),
		)
	}
}
