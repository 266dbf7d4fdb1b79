package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algo"
)

const barGlyph = "█"

// barHeights scales values so the largest fills rows. Every positive value
// gets at least one row.
func barHeights(bars []algo.Bar, rows int) []int {
	maxVal := 0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	heights := make([]int, len(bars))
	if maxVal == 0 || rows <= 0 {
		return heights
	}
	for i, b := range bars {
		h := (b.Value*rows + maxVal - 1) / maxVal
		if h < 1 && b.Value > 0 {
			h = 1
		}
		heights[i] = h
	}
	return heights
}

// RenderBars paints state as a bottom-aligned bar chart rows lines tall, one
// column per position, colored by role.
func RenderBars(state algo.RenderState, theme Theme, rows int) string {
	heights := barHeights(state.Bars, rows)
	styles := make(map[algo.Role]lipgloss.Style)
	style := func(r algo.Role) lipgloss.Style {
		s, ok := styles[r]
		if !ok {
			s = lipgloss.NewStyle().Foreground(theme.RoleColor(r))
			styles[r] = s
		}
		return s
	}

	lines := make([]string, 0, rows)
	for row := rows; row >= 1; row-- {
		var b strings.Builder
		// Group runs of equal role so each run is styled once.
		runStart := 0
		for i := 0; i <= len(state.Bars); i++ {
			if i < len(state.Bars) && i > runStart && sameCell(state.Bars, heights, runStart, i, row) {
				continue
			}
			if i > runStart {
				b.WriteString(paintRun(state.Bars[runStart].Role, heights[runStart] >= row, i-runStart, style))
			}
			runStart = i
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func sameCell(bars []algo.Bar, heights []int, a, b, row int) bool {
	filledA, filledB := heights[a] >= row, heights[b] >= row
	if filledA != filledB {
		return false
	}
	return !filledA || bars[a].Role == bars[b].Role
}

func paintRun(role algo.Role, filled bool, n int, style func(algo.Role) lipgloss.Style) string {
	if !filled {
		return strings.Repeat(" ", n)
	}
	return style(role).Render(strings.Repeat(barGlyph, n))
}
