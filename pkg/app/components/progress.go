package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/services"
)

// ProgressTracker shows the latest progress of each running export.
type ProgressTracker struct {
	exports map[string]*services.ExportProgress
	width   int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		exports: make(map[string]*services.ExportProgress),
		width:   width,
	}
}

func (p *ProgressTracker) Update(progress services.ExportProgress) {
	prog := progress
	p.exports[progress.Book] = &prog
}

// SetWidth resizes the bars without dropping tracked exports.
func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

func (p *ProgressTracker) Clear() {
	p.exports = make(map[string]*services.ExportProgress)
}

// HasActive reports whether any export is still running.
func (p *ProgressTracker) HasActive() bool {
	for _, prog := range p.exports {
		if prog.Status != "complete" && prog.Status != "error" {
			return true
		}
	}
	return false
}

func (p *ProgressTracker) View() string {
	if len(p.exports) == 0 {
		return ""
	}

	books := make([]string, 0, len(p.exports))
	for book := range p.exports {
		books = append(books, book)
	}
	sort.Strings(books)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Exports"))
	b.WriteString("\n")

	for _, book := range books {
		progress := p.exports[book]
		label := progress.Book
		if progress.Chapter > 0 {
			label = fmt.Sprintf("%s %d", progress.Book, progress.Chapter)
		}
		b.WriteString(styles.TextStyle.Render(label))
		b.WriteString("\n")

		statusText := progress.Status
		if progress.Total > 0 {
			percentage := float64(progress.Current) / float64(progress.Total) * 100
			statusText = fmt.Sprintf("%s (%d/%d chapters - %.0f%%)",
				progress.Status, progress.Current, progress.Total, percentage)
			b.WriteString(renderProgressBar(progress.Current, progress.Total, p.width-4))
			b.WriteString("\n")
		}
		b.WriteString(styles.StatusStyle(progress.Status).Render(statusText))
		b.WriteString("\n")

		if progress.Error != nil {
			b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", progress.Error)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}

// SimpleProgress renders a bare progress bar.
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
