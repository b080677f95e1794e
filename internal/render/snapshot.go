package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Snapshot is one frozen frame: both panels as colored cell grids plus
// the legend and a human-readable label.
type Snapshot struct {
	Sky, Space CellGrid
	Legend     string
	Label      string
}

// Compose lays the panels side by side with the legend and label
// underneath. Chrome such as borders and key hints belongs to callers.
func (s Snapshot) Compose() string {
	panels := lipgloss.JoinHorizontal(lipgloss.Top, s.Sky.Render(), "  ", s.Space.Render())
	var b strings.Builder
	b.WriteString(panels)
	b.WriteByte('\n')
	b.WriteString(s.Legend)
	if s.Label != "" {
		b.WriteByte('\n')
		b.WriteString(s.Label)
	}
	return b.String()
}

// Legend renders the shared color bar with the scale bounds at its
// ends. One legend is valid for both panels because they share the
// scale.
func Legend(p Palette, scale ColorScale, width int) string {
	left := fmt.Sprintf("%.4g pc ", scale.Min)
	right := fmt.Sprintf(" %.4g pc", scale.Max)
	n := width - len(left) - len(right)
	if n < 8 {
		n = 8
	}
	var b strings.Builder
	b.WriteString(left)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		b.WriteString(styleFor(p.At(t)).Render("█"))
	}
	b.WriteString(right)
	return b.String()
}
