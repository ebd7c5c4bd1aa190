package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCheckString_WithValue(t *testing.T) {
	name, value := ParseCheckString("contains:func")

	assert.Equal(t, "contains", name)
	assert.Equal(t, "func", value)
}

func TestParseCheckString_NameOnly(t *testing.T) {
	name, value := ParseCheckString("not_empty")

	assert.Equal(t, "not_empty", name)
	assert.Nil(t, value)
}

func TestParseCheckString_ValueWithColon(t *testing.T) {
	name, value := ParseCheckString("matches_regex:^a:b$")

	assert.Equal(t, "matches_regex", name)
	assert.Equal(t, "^a:b$", value)
}
