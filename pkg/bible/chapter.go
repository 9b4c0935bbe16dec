package bible

import (
	"context"
	"errors"
	"iter"
	"strconv"

	"github.com/kerbaras/pible/pkg/data"
)

// Chapter is a handle on one chapter of a book. Its verse count is not known
// up front; All and Verses discover it by resolving verses in order.
type Chapter struct {
	s      *session
	book   string
	number int
}

// NewChapter validates translation, book and chapter number, in that order.
func NewChapter(translation data.Translation, credential, book string, number int, opts ...Option) (Chapter, error) {
	s, err := newSession(translation, credential, opts)
	if err != nil {
		return Chapter{}, err
	}
	return newChapter(s, book, number)
}

func newChapter(s *session, book string, number int) (Chapter, error) {
	count, err := data.ChapterCount(book)
	if err != nil {
		return Chapter{}, err
	}
	if number < 1 || number > count {
		return Chapter{}, &data.ChapterRangeError{Book: book, Chapter: number, Max: count}
	}
	return Chapter{s: s, book: book, number: number}, nil
}

func (c Chapter) Number() int { return c.number }

func (c Chapter) BookName() string { return c.book }

// Book rebuilds the handle of the book this chapter belongs to.
func (c Chapter) Book() Book {
	b, err := newBook(c.s, c.book)
	if err != nil {
		panic(err)
	}
	return b
}

// Verse returns a handle on verse n. The number is not checked; an invalid
// verse only surfaces as data.ErrVerseOutOfRange from Verse.Text.
func (c Chapter) Verse(n int) *Verse {
	return &Verse{s: c.s, book: c.book, chapter: c.number, number: n}
}

// All yields verses 1, 2, 3, ... for as long as their text resolves. The
// first data.ErrVerseOutOfRange ends the sequence without an error; any
// other resolution error is yielded once and ends it. Each range over the
// returned sequence probes again from verse 1.
func (c Chapter) All(ctx context.Context) iter.Seq2[*Verse, error] {
	return func(yield func(*Verse, error) bool) {
		for n := 1; ; n++ {
			v := c.Verse(n)
			if _, err := v.Text(ctx); err != nil {
				if !errors.Is(err, data.ErrVerseOutOfRange) {
					yield(nil, err)
				}
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Verses collects All. On error it returns the verses resolved so far
// alongside the error.
func (c Chapter) Verses(ctx context.Context) ([]*Verse, error) {
	var verses []*Verse
	for v, err := range c.All(ctx) {
		if err != nil {
			return verses, err
		}
		verses = append(verses, v)
	}
	return verses, nil
}

// Equal compares chapters by book name and number.
func (c Chapter) Equal(other Chapter) bool {
	return c.book == other.book && c.number == other.number
}

func (c Chapter) String() string {
	return "BibleChapter<" + c.book + " " + strconv.Itoa(c.number) + ">"
}
