package predicate

import (
	"fmt"
	"strings"
)

// matchingFailure builds the base failure message for Matches.
// Values render with their default %v representation, so a
// float64 NaN renders as "NaN".
func matchingFailure(value any) string {
	return fmt.Sprintf(
		"expected: matching predicate but was: <%v>", value,
	)
}

// notMatchingFailure builds the base failure message for
// DoesNotMatch.
func notMatchingFailure(value any) string {
	return fmt.Sprintf(
		"expected: not matching predicate but was: <%v>", value,
	)
}

// prefixed joins the resolved caller message to the base
// failure message with " ==> ". A blank caller message yields
// the base message alone.
func prefixed(base string, message []any) string {
	msg := resolveMessage(message)
	if strings.TrimSpace(msg) == "" {
		return base
	}

	return msg + " ==> " + base
}

// resolveMessage turns the variadic message arguments into a
// prefix string. Accepted forms:
//
//   - nothing: no prefix
//   - a single string: used verbatim
//   - a string followed by arguments: fmt.Sprintf formatting
//   - a func() string supplier: invoked here, at most once,
//     and only ever on the failure path
//
// Any other single value renders with %+v.
func resolveMessage(message []any) string {
	if len(message) == 0 {
		return ""
	}

	if len(message) == 1 {
		switch m := message[0].(type) {
		case string:
			return m
		case func() string:
			return m()
		default:
			return fmt.Sprintf("%+v", m)
		}
	}

	if format, ok := message[0].(string); ok {
		return fmt.Sprintf(format, message[1:]...)
	}

	return fmt.Sprint(message...)
}
