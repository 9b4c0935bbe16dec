package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pible/pkg/app/styles"
)

// SelectItem is one row of a SelectList.
type SelectItem struct {
	Title  string
	Detail string
	Value  any
}

// SelectList is a wrapping, scrollable list with one selected row.
type SelectList struct {
	Items         []SelectItem
	SelectedIndex int
	Width         int
	Height        int
	Empty         string
}

func NewSelectList() *SelectList {
	return &SelectList{
		Items:  []SelectItem{},
		Width:  80,
		Height: 20,
		Empty:  "Nothing to show",
	}
}

func (l *SelectList) SetItems(items []SelectItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *SelectList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *SelectList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

// Select moves the selection to the first item whose title is title.
func (l *SelectList) Select(title string) bool {
	for i, item := range l.Items {
		if item.Title == title {
			l.SelectedIndex = i
			return true
		}
	}
	return false
}

func (l *SelectList) Selected() *SelectItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

// window returns the visible index range, keeping the selection in view.
func (l *SelectList) window() (start, end int) {
	rows := l.Height
	if rows <= 0 || rows >= len(l.Items) {
		return 0, len(l.Items)
	}
	start = l.SelectedIndex - rows/2
	if start < 0 {
		start = 0
	}
	end = start + rows
	if end > len(l.Items) {
		end = len(l.Items)
		start = end - rows
	}
	return start, end
}

func (l *SelectList) View() string {
	if len(l.Items) == 0 {
		msg := styles.MutedStyle.Render(l.Empty)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	start, end := l.window()
	for i := start; i < end; i++ {
		item := l.Items[i]
		line := item.Title
		if i == l.SelectedIndex {
			line = styles.SelectedStyle.Render("▸ " + line)
		} else {
			line = styles.TextStyle.Render("  " + line)
		}
		if item.Detail != "" {
			line = lipgloss.JoinHorizontal(lipgloss.Center, line, "  ", styles.MutedStyle.Render(item.Detail))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
