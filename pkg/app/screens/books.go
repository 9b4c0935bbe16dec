package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pible/pkg/app/components"
	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/bible"
)

// BooksScreen lists the canon.
type BooksScreen struct {
	bible  *bible.Bible
	list   *components.SelectList
	width  int
	height int
}

func NewBooksScreen(b *bible.Bible) *BooksScreen {
	list := components.NewSelectList()
	list.Empty = "No books"

	books := b.Books()
	items := make([]components.SelectItem, len(books))
	for i, book := range books {
		detail := fmt.Sprintf("%d chapters", book.ChapterCount())
		if book.ChapterCount() == 1 {
			detail = "1 chapter"
		}
		items[i] = components.SelectItem{Title: book.Name(), Detail: detail, Value: book}
	}
	list.SetItems(items)

	return &BooksScreen{bible: b, list: list}
}

func (s *BooksScreen) Init() tea.Cmd {
	return nil
}

func (s *BooksScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 12

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "enter", "right", "l":
			if selected := s.list.Selected(); selected != nil {
				return s, switchTo("chapters", selected.Value)
			}
		}
	}
	return s, nil
}

func (s *BooksScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("The Bible (%s)", s.bible.Translation()))
	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • enter: chapters • tab: go to reference • q: quit",
	)
	return fmt.Sprintf("%s\n%s\n%s", header, s.list.View(), help)
}
