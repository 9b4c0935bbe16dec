package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pible/pkg/app/components"
	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/bible"
	"github.com/kerbaras/pible/pkg/services"
)

type screenType int

const (
	booksView screenType = iota
	gotoView
	chaptersView
	chapterView
)

// RootScreen owns the sub-screens and routes messages to the active one.
type RootScreen struct {
	ctx       context.Context
	reader    *services.Reader
	exportDir string

	currentView screenType
	books       *BooksScreen
	goTo        *GotoScreen
	chapters    *ChaptersScreen
	chapter     *ChapterScreen
	progress    *components.ProgressTracker
	status      string

	width  int
	height int
}

func NewRootScreen(ctx context.Context, reader *services.Reader, exportDir string) *RootScreen {
	return &RootScreen{
		ctx:         ctx,
		reader:      reader,
		exportDir:   exportDir,
		currentView: booksView,
		books:       NewBooksScreen(reader.Bible()),
		goTo:        NewGotoScreen(reader.Bible()),
		progress:    components.NewProgressTracker(80),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.books.Init(), r.listenForProgress)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.progress.SetWidth(msg.Width - 4)
		// Keep every screen sized, not just the visible one.
		r.books.Update(msg)
		r.goTo.Update(msg)
		if r.chapters != nil {
			r.chapters.Update(msg)
		}
		if r.chapter != nil {
			r.chapter.Update(msg)
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if r.currentView != gotoView {
				return r, tea.Quit
			}
		case "tab":
			switch r.currentView {
			case booksView:
				r.currentView = gotoView
				return r, r.goTo.Init()
			case gotoView:
				r.currentView = booksView
				return r, nil
			}
		}

	case services.ExportProgress:
		r.progress.Update(msg)
		return r, r.listenForProgress

	case exportDoneMsg:
		if msg.err != nil {
			r.status = styles.StatusError.Render(fmt.Sprintf("Export of %s failed: %s", msg.book, msg.err))
		} else {
			r.status = styles.StatusCompleted.Render(fmt.Sprintf("Exported %s to %s", msg.book, msg.path))
		}
		if r.chapters != nil {
			r.chapters.Update(msg)
		}
		return r, nil

	case SwitchScreenMsg:
		return r, r.switchScreen(msg)
	}

	switch r.currentView {
	case booksView:
		_, cmd = r.books.Update(msg)
	case gotoView:
		_, cmd = r.goTo.Update(msg)
	case chaptersView:
		_, cmd = r.chapters.Update(msg)
	case chapterView:
		_, cmd = r.chapter.Update(msg)
	}
	return r, cmd
}

func (r *RootScreen) switchScreen(msg SwitchScreenMsg) tea.Cmd {
	size := tea.WindowSizeMsg{Width: r.width, Height: r.height}

	switch msg.Screen {
	case "books":
		r.currentView = booksView
		return r.books.Init()

	case "chapters":
		var book bible.Book
		selected := 0
		switch data := msg.Data.(type) {
		case bible.Book:
			book = data
		case bible.Chapter:
			// Back from the reader: land on the chapter just read.
			book = data.Book()
			selected = data.Number()
		default:
			return nil
		}
		if r.chapters == nil || !r.chapters.book.Equal(book) {
			r.chapters = NewChaptersScreen(r.ctx, r.reader, book, r.exportDir)
			r.chapters.Update(size)
		}
		if selected > 0 {
			r.chapters.SelectChapter(selected)
		}
		r.currentView = chaptersView
		return r.chapters.Init()

	case "reader":
		open, ok := msg.Data.(openChapter)
		if !ok {
			return nil
		}
		r.chapter = NewChapterScreen(r.ctx, open.Chapter, open.Verse)
		r.chapter.Update(size)
		r.currentView = chapterView
		return r.chapter.Init()
	}
	return nil
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case booksView:
		content = r.books.View()
	case gotoView:
		content = r.goTo.View()
	case chaptersView:
		content = r.chapters.View()
	case chapterView:
		content = r.chapter.View()
	}

	view := fmt.Sprintf("%s\n\n%s", r.renderTabs(), content)
	if p := r.progress.View(); p != "" {
		view += "\n" + p
	}
	if r.status != "" {
		view += "\n" + r.status
	}
	return view
}

func (r *RootScreen) renderTabs() string {
	booksTab := styles.InactiveTabStyle.Render("Books")
	gotoTab := styles.InactiveTabStyle.Render("Go to")

	switch r.currentView {
	case gotoView:
		gotoTab = styles.ActiveTabStyle.Render("Go to")
	default:
		booksTab = styles.ActiveTabStyle.Render("Books")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, booksTab, gotoTab)
}

func (r *RootScreen) listenForProgress() tea.Msg {
	progress, ok := <-r.reader.GetProgressChannel()
	if !ok {
		return nil
	}
	return progress
}
