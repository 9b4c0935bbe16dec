package integrations

import "github.com/kerbaras/pible/pkg/data"

// ChapterText is a chapter whose verses have been resolved. Verses[i] is
// verse i+1.
type ChapterText struct {
	Book   string
	Number int
	Verses []string
}

// Exporter receives chapters one at a time and writes them out on Done.
type Exporter interface {
	Init(book string, translation data.Translation) error
	Next(chapter ChapterText) error
	Done() (string, error)
}
