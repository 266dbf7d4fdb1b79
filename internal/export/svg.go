package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/san-kum/sortviz/internal/algo"
)

// Palette maps a bar role to a CSS color.
type Palette func(algo.Role) string

// DefaultPalette matches the classic terminal theme.
func DefaultPalette(r algo.Role) string {
	switch r {
	case algo.RoleSorted:
		return "#ffff00"
	case algo.RoleCandidate:
		return "#ff0000"
	case algo.RoleCursor, algo.RoleCompare:
		return "#00ff00"
	default:
		return "#add8e6"
	}
}

// StateToSVG draws one bar per position. Bar heights are proportional to the
// value, with the largest value filling the full height.
func StateToSVG(state algo.RenderState, palette Palette, scale float64) string {
	if palette == nil {
		palette = DefaultPalette
	}
	if scale <= 0 {
		scale = 1
	}

	maxVal := 0
	for _, b := range state.Bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}

	barW := 8 * scale
	gap := 2 * scale
	height := 200 * scale
	width := float64(len(state.Bars))*(barW+gap) + gap

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g>
`, width, height, width, height))

	for i, b := range state.Bars {
		if maxVal == 0 {
			break
		}
		h := float64(b.Value) / float64(maxVal) * (height - gap)
		x := gap + float64(i)*(barW+gap)
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, height-h, barW, h, palette(b.Role)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG renders state to path.
func WriteSVG(path string, state algo.RenderState, palette Palette, scale float64) error {
	if err := os.WriteFile(path, []byte(StateToSVG(state, palette, scale)), 0644); err != nil {
		return errors.Wrap(err, "write svg")
	}
	return nil
}
