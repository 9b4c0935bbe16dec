package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Palette, parchment and ink.
	Primary    = lipgloss.Color("#D4A373")
	Secondary  = lipgloss.Color("#A3B18A")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#6B705C")
	Background = lipgloss.Color("#283618")
	Foreground = lipgloss.Color("#FEFAE0")

	RoundedBorder = lipgloss.RoundedBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Verse numbers in the reader.
	VerseNumberStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// A verse opened by reference.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			BorderStyle(RoundedBorder).
			BorderForeground(Primary).
			Padding(0, 1)

	StatusWorking = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#3A5A40")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	// Header row of the books table.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(Muted)
)

// StatusStyle picks the style for an export status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "resolving", "writing":
		return StatusWorking
	case "complete":
		return StatusCompleted
	case "error":
		return StatusError
	default:
		return MutedStyle
	}
}
