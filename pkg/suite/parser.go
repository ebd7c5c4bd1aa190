package suite

import "strings"

// ParseCheckString parses a compact check string of the form
// "name:value" into its components. If no colon is present the
// entire string is treated as the name and value is nil.
//
// Examples:
//
//	"contains:func"  -> ("contains", "func")
//	"not_empty"      -> ("not_empty", nil)
//	"min_length:100" -> ("min_length", "100")
func ParseCheckString(
	s string,
) (name string, value any) {
	parts := strings.SplitN(s, ":", 2)
	name = parts[0]

	if len(parts) > 1 {
		value = parts[1]
	}

	return
}
