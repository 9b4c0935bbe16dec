package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/bible"
	"github.com/kerbaras/pible/pkg/data"
)

// ChapterScreen shows a chapter, resolving its verses one at a time.
type ChapterScreen struct {
	ctx       context.Context
	chapter   bible.Chapter
	highlight int
	verses    []string
	loading   bool
	err       error
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
}

func NewChapterScreen(ctx context.Context, chapter bible.Chapter, highlight int) *ChapterScreen {
	return &ChapterScreen{
		ctx:       ctx,
		chapter:   chapter,
		highlight: highlight,
		loading:   true,
	}
}

type verseMsg struct {
	chapter bible.Chapter
	number  int
	text    string
	err     error
}

func (s *ChapterScreen) Init() tea.Cmd {
	return s.resolve(1)
}

// resolve fetches verse n. The chapter ends at the first verse the source
// does not have.
func (s *ChapterScreen) resolve(n int) tea.Cmd {
	verse := s.chapter.Verse(n)
	return func() tea.Msg {
		text, err := verse.Text(s.ctx)
		return verseMsg{chapter: s.chapter, number: n, text: text, err: err}
	}
}

func (s *ChapterScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == 0 {
			break
		}
		s.width = msg.Width
		s.height = msg.Height
		if !s.ready {
			s.viewport = viewport.New(msg.Width-4, msg.Height-10)
			s.ready = true
		} else {
			s.viewport.Width = msg.Width - 4
			s.viewport.Height = msg.Height - 10
		}
		s.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return s, switchTo("chapters", s.chapter)
		case "n", "right", "l":
			return s, s.step(1)
		case "p", "left", "h":
			return s, s.step(-1)
		}

	case verseMsg:
		if !msg.chapter.Equal(s.chapter) || msg.number != len(s.verses)+1 {
			return s, nil
		}
		if msg.err != nil {
			s.loading = false
			if !errors.Is(msg.err, data.ErrVerseOutOfRange) || msg.number == 1 {
				s.err = msg.err
			}
			s.refresh()
			return s, nil
		}
		s.verses = append(s.verses, msg.text)
		s.refresh()
		if msg.number == s.highlight {
			s.scrollToHighlight()
		}
		return s, s.resolve(msg.number + 1)
	}

	if s.ready {
		s.viewport, cmd = s.viewport.Update(msg)
	}
	return s, cmd
}

// step moves to the neighbouring chapter, if the book has one.
func (s *ChapterScreen) step(delta int) tea.Cmd {
	next, err := s.chapter.Book().Chapter(s.chapter.Number() + delta)
	if err != nil {
		return nil
	}
	return switchTo("reader", openChapter{Chapter: next})
}

func (s *ChapterScreen) refresh() {
	if !s.ready {
		return
	}
	s.viewport.SetContent(s.render())
}

func (s *ChapterScreen) scrollToHighlight() {
	if !s.ready {
		return
	}
	// Lines before the highlighted verse.
	lines := strings.Count(s.renderVerses(s.verses[:s.highlight-1]), "\n")
	s.viewport.SetYOffset(lines)
}

func (s *ChapterScreen) render() string {
	body := s.renderVerses(s.verses)
	switch {
	case s.err != nil:
		body += styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n"
	case s.loading:
		body += styles.StatusWorking.Render("Loading...") + "\n"
	}
	return body
}

func (s *ChapterScreen) renderVerses(verses []string) string {
	width := s.viewport.Width
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for i, text := range verses {
		number := styles.VerseNumberStyle.Render(fmt.Sprintf("%d ", i+1))
		line := styles.TextStyle.Render(text)
		if i+1 == s.highlight {
			line = styles.HighlightStyle.Render(text)
		}
		b.WriteString(wrap.Render(number + line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ChapterScreen) View() string {
	if !s.ready {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("%s %d", s.chapter.BookName(), s.chapter.Number()))
	help := styles.HelpStyle.Render(
		"↑/↓: scroll • n/→: next chapter • p/←: previous chapter • esc: back • q: quit",
	)
	return fmt.Sprintf("%s\n%s\n%s", header, s.viewport.View(), help)
}
