package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the terminal view.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
}

var Themes = []Theme{
	{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Border:  lipgloss.Color("#444466"),
		Error:   lipgloss.Color("#ff4444"),
	},
	{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#003300"),
		Error:   lipgloss.Color("#ff0000"),
	},
	{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#444444"),
		Error:   lipgloss.Color("#ff0000"),
	},
	{
		Name:    "sunset",
		Primary: lipgloss.Color("#fbbc58"),
		Accent:  lipgloss.Color("#ff6b6b"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#4a2d4b"),
		Error:   lipgloss.Color("#ff4757"),
	},
}

// ThemeNames returns the names of all themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t Theme) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func (t Theme) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) box(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(width).
		Padding(0, 1)
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
