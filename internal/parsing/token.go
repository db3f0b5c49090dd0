package parsing

import (
	"strconv"
	"strings"

	"github.com/jonathan/compat-scorer/internal/types"
)

// ParseNumericToken extracts a numeric value from a decorated report token.
// Handled decorations, in order: a lone dash meaning "not reported", one
// matching pair of surrounding brackets, and a trailing percent sign. It
// never fails; callers that must distinguish an explicit zero from an
// absent value check the Present flag.
func ParseNumericToken(raw string) types.NumericToken {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return types.NumericToken{}
	}

	if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" || s == "-" {
		return types.NumericToken{}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return types.NumericToken{}
	}

	return types.NumericToken{Value: value, Present: true}
}
