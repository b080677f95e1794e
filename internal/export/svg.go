package export

import (
	"fmt"
	"strings"

	"github.com/astrokit/stardrift/internal/render"
)

// SnapshotSVG renders one frozen frame as vector art: one circle per lit
// braille dot, filled with that cell's color, both panels side by side
// over a dark background. scale is the pixel pitch of a single dot.
func SnapshotSVG(snap render.Snapshot, p render.Palette, scale float64) string {
	if scale <= 0 {
		scale = 4
	}

	skyW, spaceW := snap.Sky.Width(), snap.Space.Width()
	rows := snap.Sky.Height()
	if snap.Space.Height() > rows {
		rows = snap.Space.Height()
	}

	// 2 dot columns and 4 dot rows per character cell.
	cellW, cellH := 2*scale, 4*scale
	gap := float64(gapCells) * cellW
	width := (float64(skyW)+float64(spaceW))*cellW + gap
	height := float64(rows)*cellH + 2*cellH

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writeGrid(&sb, snap.Sky, 0, scale)
	writeGrid(&sb, snap.Space, float64(skyW)*cellW+gap, scale)

	// Legend ramp with the frame label underneath the panels.
	rampY := float64(rows)*cellH + scale
	const rampSteps = 64
	stepW := width / rampSteps
	for i := 0; i < rampSteps; i++ {
		t := float64(i) / float64(rampSteps-1)
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*stepW, rampY, stepW+0.5, cellH/2, p.At(t).Hex()))
	}
	if snap.Label != "" {
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%.1f" font-family="monospace" font-size="%.1f" fill="#cccccc">%s</text>
`, rampY+cellH+scale, 3*scale, snap.Label))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeGrid(sb *strings.Builder, g render.CellGrid, offX, scale float64) {
	dotRadius := scale * 0.4
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			r := g.Runes[row][col]
			baseX := offX + float64(col)*scale*2
			baseY := float64(row) * scale * 4
			fill := g.Colors[row][col].Hex()

			if r < 0x2800 || r > 0x28ff {
				// Overlay rune, drawn as a small filled square.
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, baseX, baseY+scale, 2*scale, 2*scale, fill))
				continue
			}

			pattern := int(r - 0x2800)
			if pattern == 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}
}
