// Package tui provides the terminal level browser and its SSH server.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphStyles maps rendered level characters to lipgloss styles.
var glyphStyles = map[rune]lipgloss.Style{
	'#': lipgloss.NewStyle().Foreground(lipgloss.Color("1")),   // brick
	'=': lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // solid
	'H': lipgloss.NewStyle().Foreground(lipgloss.Color("3")),   // ladder
	'-': lipgloss.NewStyle().Foreground(lipgloss.Color("6")),   // rope
	'T': lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // trap brick
	'$': lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // gold
	'P': lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	'E': lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	'~': lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8"))
)

// styleRow applies per-glyph styles to one rendered level row, grouping
// runs of the same character to keep escape sequences short.
func styleRow(row string) string {
	var sb strings.Builder
	runes := []rune(row)
	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		run := string(runes[i:j])
		if style, ok := glyphStyles[runes[i]]; ok {
			sb.WriteString(style.Render(run))
		} else {
			sb.WriteString(run)
		}
		i = j
	}
	return sb.String()
}
