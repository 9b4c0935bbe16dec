package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pible/pkg/bible"
)

// SwitchScreenMsg asks the root screen to change view.
type SwitchScreenMsg struct {
	Screen string
	Data   any
}

// openChapter is the payload for switching to the reader.
type openChapter struct {
	Chapter bible.Chapter
	Verse   int // verse to highlight, 0 for none
}

type exportDoneMsg struct {
	book string
	path string
	err  error
}

func switchTo(screen string, data any) tea.Cmd {
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: screen, Data: data}
	}
}
