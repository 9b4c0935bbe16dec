package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/bible"
	"github.com/kerbaras/pible/pkg/ref"
)

// GotoScreen opens the chapter a typed reference points at.
type GotoScreen struct {
	bible  *bible.Bible
	input  textinput.Model
	width  int
	height int
	err    error
}

func NewGotoScreen(b *bible.Bible) *GotoScreen {
	ti := textinput.New()
	ti.Placeholder = "John 3:16"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return &GotoScreen{bible: b, input: ti}
}

func (s *GotoScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *GotoScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			open, err := s.target(s.input.Value())
			s.err = err
			if err != nil {
				return s, nil
			}
			s.input.Reset()
			return s, switchTo("reader", open)
		case "esc":
			s.input.Reset()
			s.err = nil
			return s, switchTo("books", nil)
		}
	}

	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// target resolves a reference to the chapter it starts in.
func (s *GotoScreen) target(input string) (openChapter, error) {
	p, err := ref.Parse(input)
	if err != nil {
		return openChapter{}, err
	}
	book, err := s.bible.Book(p.Book)
	if err != nil {
		return openChapter{}, err
	}
	n := p.Chapter
	if n == 0 {
		n = 1
	}
	ch, err := book.Chapter(n)
	if err != nil {
		return openChapter{}, err
	}
	return openChapter{Chapter: ch, Verse: p.Verse}, nil
}

func (s *GotoScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("Go to reference")
	inputView := styles.FocusedInputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	}

	help := styles.HelpStyle.Render("enter: open • esc: back to books • tab: switch view • ctrl+c: quit")
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, inputView, errorMsg, help)
}
