package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for the elapsed part
// of an interval. The bar turns yellow then red as the interval runs out.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct >= 0.75:
		style = StyleRed
	case pct >= 0.5:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// HourProgress is RenderProgress for the part of h already elapsed at now.
func HourProgress(h domain.PlanetaryHour, now time.Time, width int) string {
	total := h.Duration()
	if total <= 0 {
		return RenderProgress(0, width)
	}
	return RenderProgress(float64(now.Sub(h.Start))/float64(total), width)
}
