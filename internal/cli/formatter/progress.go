package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░].
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
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	return fmt.Sprintf("[%s]", StyleHeader.Render(bar))
}

// RenderStepLine renders the wizard breadcrumb, highlighting the current
// step: "Contact ▸ Project ▸ Events ▸ Deliverables ▸ Review".
func RenderStepLine(labels []string, current int) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		switch {
		case i+1 == current:
			parts[i] = StyleHeader.Render(label)
		case i+1 < current:
			parts[i] = StyleGreen.Render(label)
		default:
			parts[i] = StyleDim.Render(label)
		}
	}
	return strings.Join(parts, StyleDim.Render(" ▸ "))
}

// RenderStepHeader renders the full per-step banner: breadcrumb plus a
// "Step n of m" progress bar.
func RenderStepHeader(labels []string, current int) string {
	total := len(labels)
	if total == 0 {
		return ""
	}
	bar := RenderProgress(float64(current)/float64(total), 20)
	return fmt.Sprintf("\n%s\n%s %s\n",
		RenderStepLine(labels, current),
		Dim(fmt.Sprintf("Step %d of %d", current, total)),
		bar)
}
