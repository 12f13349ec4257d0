package overlay

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors used for the rating delta.
const (
	ColorNeutral  = "#7a7a80"
	ColorPositive = "#00f000"
	ColorNegative = "#f00000"
	ColorNewEntry = "#fff05a"
)

// Lerp blends two 24-bit hex colors channel by channel. amount is not clamped;
// channels that leave the 0-255 range wrap like a byte.
func Lerp(a, b string, amount float64) (string, error) {
	ca, err := parseHex(a)
	if err != nil {
		return "", err
	}
	cb, err := parseHex(b)
	if err != nil {
		return "", err
	}

	ar, ag, ab := ca.RGB255()
	br, bg, bb := cb.RGB255()
	return fmt.Sprintf("#%02x%02x%02x",
		lerpChannel(ar, br, amount),
		lerpChannel(ag, bg, amount),
		lerpChannel(ab, bb, amount),
	), nil
}

func lerpChannel(a, b uint8, amount float64) uint8 {
	v := math.Round(float64(a) + amount*(float64(b)-float64(a)))
	return uint8(int64(v))
}

func parseHex(s string) (colorful.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return colorful.Color{}, newValidationError(fmt.Errorf("color %q: want 6 hex digits", s))
	}
	// colorful.Hex stops scanning at the first bad digit without an error.
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return colorful.Color{}, newValidationError(fmt.Errorf("color %q: want 6 hex digits", s))
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, newValidationError(fmt.Errorf("color %q: %w", s, err))
	}
	return c, nil
}
