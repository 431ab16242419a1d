// Package render turns ranked language statistics into the text block
// that is embedded in a README.
package render

import (
	"math"
	"strings"
)

const (
	// DefaultBarWidth is the number of blocks in a bar.
	DefaultBarWidth = 20

	FullBlock  = "█"
	EmptyBlock = "░"
)

// Bar renders percentage (0-100) as a bar of exactly width blocks,
// filled blocks first.
func Bar(percentage float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Floor(percentage * float64(width) / 100))
	// Out of range input is clamped instead of panicking in strings.Repeat.
	filled = min(max(filled, 0), width)
	return strings.Repeat(FullBlock, filled) + strings.Repeat(EmptyBlock, width-filled)
}
