package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ansiCodes holds the 256-color code for every core.Color, indexed by value.
// ColorDefault keeps the terminal's own foreground.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "240",
	core.ColorPink:          "205",
	core.ColorAzure:         "33",
}

var colorStyles = buildStyles()

func buildStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// cellStyle styles a cell, preferring its hex foreground. lipgloss
// downsamples hex colors to the terminal's profile.
func cellStyle(c core.Cell) lipgloss.Style {
	if c.Hex != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex))
	}
	return styleFor(c.Color)
}

// sameInk reports whether two cells render with the same foreground.
func sameInk(a, b core.Cell) bool {
	return a.Color == b.Color && a.Hex == b.Hex
}

// Shared styles for the menu, scoreboard and help views.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RenderScreen converts a Screen buffer to a styled string. Each row is
// split into runs of one color so a sparse starfield costs few escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		run.Reset()
		ink := s.GetCell(0, y)
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if !sameInk(cell, ink) {
				sb.WriteString(cellStyle(ink).Render(run.String()))
				run.Reset()
				ink = cell
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(cellStyle(ink).Render(run.String()))
		}
	}
	return sb.String()
}
