package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pible/pkg/app/components"
	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/bible"
	"github.com/kerbaras/pible/pkg/integrations"
	"github.com/kerbaras/pible/pkg/services"
)

// ChaptersScreen lists the chapters of one book.
type ChaptersScreen struct {
	ctx       context.Context
	reader    *services.Reader
	book      bible.Book
	exportDir string
	list      *components.SelectList
	exporting bool
	width     int
	height    int
}

func NewChaptersScreen(ctx context.Context, reader *services.Reader, book bible.Book, exportDir string) *ChaptersScreen {
	list := components.NewSelectList()
	list.Empty = "No chapters"

	chapters := book.Chapters()
	items := make([]components.SelectItem, len(chapters))
	for i, ch := range chapters {
		items[i] = components.SelectItem{Title: fmt.Sprintf("Chapter %d", ch.Number()), Value: ch}
	}
	list.SetItems(items)

	return &ChaptersScreen{
		ctx:       ctx,
		reader:    reader,
		book:      book,
		exportDir: exportDir,
		list:      list,
	}
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return nil
}

// SelectChapter moves the cursor to chapter n.
func (s *ChaptersScreen) SelectChapter(n int) {
	s.list.Select(fmt.Sprintf("Chapter %d", n))
}

func (s *ChaptersScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 16

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "enter", "right", "l":
			if selected := s.list.Selected(); selected != nil {
				return s, switchTo("reader", openChapter{Chapter: selected.Value.(bible.Chapter)})
			}
		case "e":
			if !s.exporting {
				s.exporting = true
				return s, s.export()
			}
		case "esc", "backspace", "left", "h":
			return s, switchTo("books", s.book.Name())
		}

	case exportDoneMsg:
		if msg.book == s.book.Name() {
			s.exporting = false
		}
	}
	return s, nil
}

func (s *ChaptersScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(s.book.Name())
	sub := styles.SubtitleStyle.Render(fmt.Sprintf("%d chapters", s.book.ChapterCount()))
	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: read • e: export EPUB • esc: back • q: quit",
	)
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, sub, s.list.View(), help)
}

// export writes the whole book as an EPUB. Progress arrives on the reader's
// progress channel.
func (s *ChaptersScreen) export() tea.Cmd {
	book := s.book.Name()
	return func() tea.Msg {
		path, err := s.reader.Export(s.ctx, integrations.NewEPubBuilder(s.exportDir), book, 0, 0)
		return exportDoneMsg{book: book, path: path, err: err}
	}
}
