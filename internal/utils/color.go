package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultGenreColor is shown for genres whose stored color cannot be parsed.
const DefaultGenreColor = "#FF0000"

// NormalizeHexColor converts a hex color to the canonical "#RRGGBB" form.
// Accepted inputs, with or without the leading '#': "RGB" shorthand,
// "RRGGBB", and "RRGGBBAA" (the alpha channel is dropped).
// Example: "0f8" -> "#00FF88"
func NormalizeHexColor(hex string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		h = h[:6]
	default:
		return "", fmt.Errorf("invalid hex color %q: expected 3, 6 or 8 hex digits", hex)
	}

	value, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return fmt.Sprintf("#%06X", value), nil
}

// DisplayColor returns the normalized color, or DefaultGenreColor when the
// stored value does not parse.
func DisplayColor(hex string) string {
	normalized, err := NormalizeHexColor(hex)
	if err != nil {
		return DefaultGenreColor
	}
	return normalized
}
