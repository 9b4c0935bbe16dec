package bible

import (
	"context"
	"fmt"
	"sync"

	"github.com/kerbaras/pible/pkg/data"
	"go.uber.org/zap"
)

// Verse is a handle on one verse. Its text is resolved on the first
// successful call to Text and kept for the life of the handle.
type Verse struct {
	s       *session
	book    string
	chapter int
	number  int

	mu       sync.Mutex
	text     string
	resolved bool
}

// NewVerse validates translation, book and chapter like NewChapter. The verse
// number itself is unchecked.
func NewVerse(translation data.Translation, credential, book string, chapter, verse int, opts ...Option) (*Verse, error) {
	s, err := newSession(translation, credential, opts)
	if err != nil {
		return nil, err
	}
	return newVerse(s, book, chapter, verse)
}

func newVerse(s *session, book string, chapter, verse int) (*Verse, error) {
	c, err := newChapter(s, book, chapter)
	if err != nil {
		return nil, err
	}
	return c.Verse(verse), nil
}

func (v *Verse) Number() int { return v.number }

func (v *Verse) Reference() data.Reference {
	return data.Reference{Book: v.book, Chapter: v.chapter, Verse: v.number}
}

// Book rebuilds the handle of the owning book.
func (v *Verse) Book() Book {
	return v.Chapter().Book()
}

// Chapter rebuilds the handle of the owning chapter.
func (v *Verse) Chapter() Chapter {
	return Chapter{s: v.s, book: v.book, number: v.chapter}
}

// Text returns the verse text, resolving it on first use. A failed
// resolution is not cached; a successful one is never re-resolved.
func (v *Verse) Text(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.resolved {
		return v.text, nil
	}

	resolver, err := v.s.registry.Lookup(v.s.translation)
	if err != nil {
		return "", err
	}
	ref := v.Reference()
	text, err := resolver.Resolve(ctx, ref, v.s.credential)
	if err != nil {
		return "", err
	}
	v.s.logger.Debug("verse text resolved",
		zap.Stringer("ref", ref),
		zap.Stringer("translation", v.s.translation))

	v.text = text
	v.resolved = true
	return text, nil
}

// Equal compares verses by coordinates.
func (v *Verse) Equal(other *Verse) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.book == other.book && v.chapter == other.chapter && v.number == other.number
}

func (v *Verse) String() string {
	return fmt.Sprintf("BibleVerse<%s %d:%d>", v.book, v.chapter, v.number)
}
