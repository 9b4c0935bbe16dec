package bible

import (
	"github.com/kerbaras/pible/pkg/data"
)

// Book is a handle on one canonical book.
type Book struct {
	s        *session
	name     string
	chapters int
}

// NewBook validates the translation, then the book name.
func NewBook(translation data.Translation, credential, name string, opts ...Option) (Book, error) {
	s, err := newSession(translation, credential, opts)
	if err != nil {
		return Book{}, err
	}
	return newBook(s, name)
}

func newBook(s *session, name string) (Book, error) {
	n, err := data.ChapterCount(name)
	if err != nil {
		return Book{}, err
	}
	return Book{s: s, name: name, chapters: n}, nil
}

func (b Book) Name() string { return b.name }

func (b Book) ChapterCount() int { return b.chapters }

func (b Book) Translation() data.Translation { return b.s.translation }

// Chapter returns chapter n, failing with data.ErrChapterOutOfRange when n
// is outside 1..ChapterCount.
func (b Book) Chapter(n int) (Chapter, error) {
	return newChapter(b.s, b.name, n)
}

// Chapters returns every chapter of the book in order.
func (b Book) Chapters() []Chapter {
	chapters := make([]Chapter, b.chapters)
	for i := range chapters {
		chapters[i] = Chapter{s: b.s, book: b.name, number: i + 1}
	}
	return chapters
}

// Equal compares books by name only.
func (b Book) Equal(other Book) bool {
	return b.name == other.name
}

func (b Book) String() string {
	return "BibleBook<" + b.name + ">"
}
