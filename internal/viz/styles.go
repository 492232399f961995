package viz

import "github.com/charmbracelet/lipgloss"

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	// Tag styles per element kind
	BodyTag = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff00ff"))

	SpringTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffcc00"))

	StaticTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	AttrKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	AttrValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff"))

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

func tagStyle(tag string) lipgloss.Style {
	switch tag {
	case "spring":
		return SpringTag
	case "plane", "root":
		return StaticTag
	default:
		return BodyTag
	}
}
