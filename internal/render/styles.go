package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all meet WCAG AA contrast (4.5:1) on dark surfaces
	primaryColor = lipgloss.Color("#A78BFA") // Purple
	greenColor   = lipgloss.Color("#10B981") // Green
	amberColor   = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light text
)

// styles groups every lipgloss style the text renderer uses, so color
// can be disabled in one place.
type styles struct {
	Title       lipgloss.Style
	Divider     lipgloss.Style
	Member      lipgloss.Style
	Contact     lipgloss.Style
	Rationale   lipgloss.Style
	Competitive lipgloss.Style
	Social      lipgloss.Style
}

func coloredStyles() styles {
	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		Divider:   lipgloss.NewStyle().Foreground(mutedColor),
		Member:    lipgloss.NewStyle().Foreground(textColor),
		Contact:   lipgloss.NewStyle().Foreground(mutedColor),
		Rationale: lipgloss.NewStyle().Italic(true).Foreground(mutedColor),
		Competitive: lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(amberColor).
			Padding(0, 1),
		Social: lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(greenColor).
			Padding(0, 1),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		Title:       plain,
		Divider:     plain,
		Member:      plain,
		Contact:     plain,
		Rationale:   plain,
		Competitive: plain,
		Social:      plain,
	}
}
