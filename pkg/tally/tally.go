package tally

import (
	"fmt"
	"strconv"
	"strings"
)

// baseFactor converts a raw piece count into its base value. Values wrapped
// in parentheses are already base values and are added as-is.
const baseFactor = 0.07

// ParseIncrement interprets one tally input. "(x)" adds x directly, a bare
// number adds x * 0.07.
func ParseIncrement(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("empty tally input")
	}

	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		inside := trimmed[1 : len(trimmed)-1]
		value, err := strconv.ParseFloat(strings.TrimSpace(inside), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid tally value %q: %w", input, err)
		}
		return value, nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tally value %q: %w", input, err)
	}
	return value * baseFactor, nil
}
