package formatter

import (
	"fmt"
	"strings"
)

// Block characters shared with the cronogram bars.
const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress draws pct (0..1, clamped) as a block bar followed by the
// rounded percentage, colored red below 33%, yellow below 66%, else green.
func RenderProgress(pct float64, width int) string {
	switch {
	case pct < 0:
		pct = 0
	case pct > 1:
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
