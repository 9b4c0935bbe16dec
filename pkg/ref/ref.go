// Package ref parses human-written scripture references such as
// "John 3:16", "1 John 4:7-8", "Song of Solomon 2" or "Gen.1.1".
package ref

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/kerbaras/pible/pkg/data"
)

var ErrInvalidReference = errors.New("invalid reference")

// reference is the grammar for a reference, possibly spanning a range.
type reference struct {
	Book         string `parser:"@Book"`
	ChapterStart *int   `parser:"( @Number"`
	VerseStart   *int   `parser:"( \":\" @Number )?"`
	ChapterEnd   *int   `parser:"( \"-\" @Number"`
	VerseEnd     *int   `parser:"    ( \":\" @Number )? )? )?"`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Genesis, 1 John, 1John, Song of Solomon, Gen, 1 Cor.
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[reference](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// dotted matches "Gen.1.1" and "Gen.1".
var dotted = regexp.MustCompile(`^\s*(.*[A-Za-z])\.(\d+)(?:\.(\d+))?\s*$`)

// Passage is a parsed reference. A zero Chapter selects the whole book and
// a zero Verse the whole chapter. EndChapter and EndVerse are zero unless
// the reference is a range.
type Passage struct {
	Book       string
	Chapter    int
	Verse      int
	EndChapter int
	EndVerse   int
}

// Parse reads a reference and canonicalizes its book name. Unknown books
// fail with data.ErrInvalidBook; malformed input with ErrInvalidReference.
// Chapter and verse bounds are left to the bible package.
func Parse(input string) (Passage, error) {
	normalized := input
	if m := dotted.FindStringSubmatch(input); m != nil {
		normalized = m[1] + " " + m[2]
		if m[3] != "" {
			normalized += ":" + m[3]
		}
	}

	r, err := referenceParser.ParseString("", normalized)
	if err != nil {
		return Passage{}, fmt.Errorf("%w %q: %v", ErrInvalidReference, input, err)
	}

	// "John 3:16-18": the number after the dash is a verse, not a chapter.
	if r.VerseStart != nil && r.ChapterEnd != nil && r.VerseEnd == nil {
		r.VerseEnd = r.ChapterEnd
		r.ChapterEnd = nil
	}

	name := strings.TrimSuffix(r.Book, ".")
	book, ok := data.CanonicalName(name)
	if !ok {
		return Passage{}, &data.BookError{Book: name}
	}

	p := Passage{Book: book}
	if r.ChapterStart != nil {
		p.Chapter = *r.ChapterStart
	}
	if r.VerseStart != nil {
		p.Verse = *r.VerseStart
	}
	if r.ChapterEnd != nil {
		p.EndChapter = *r.ChapterEnd
	}
	if r.VerseEnd != nil {
		p.EndVerse = *r.VerseEnd
	}
	if err := p.validate(); err != nil {
		return Passage{}, fmt.Errorf("%w %q: %v", ErrInvalidReference, input, err)
	}
	return p, nil
}

// MustParse is Parse for references known to be valid.
func MustParse(input string) Passage {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Passage) validate() error {
	switch {
	case p.Chapter < 0 || p.Verse < 0 || p.EndChapter < 0 || p.EndVerse < 0:
		return errors.New("negative number")
	case p.Chapter == 0 && (p.Verse != 0 || p.EndChapter != 0 || p.EndVerse != 0):
		return errors.New("verse without chapter")
	case p.EndChapter != 0 && p.EndChapter < p.Chapter:
		return errors.New("range ends before it starts")
	case p.EndChapter == 0 && p.EndVerse != 0 && p.EndVerse < p.Verse:
		return errors.New("range ends before it starts")
	case p.EndChapter != 0 && p.EndVerse != 0 && p.Verse == 0:
		return errors.New("range end has a verse but start does not")
	}
	return nil
}

// WholeBook reports whether the passage names a book only.
func (p Passage) WholeBook() bool { return p.Chapter == 0 }

// WholeChapters reports whether the passage covers whole chapters.
func (p Passage) WholeChapters() bool { return p.Chapter != 0 && p.Verse == 0 }

// LastChapter is the final chapter the passage touches.
func (p Passage) LastChapter() int {
	if p.EndChapter != 0 {
		return p.EndChapter
	}
	return p.Chapter
}

// Single reports whether the passage is exactly one verse.
func (p Passage) Single() bool {
	return p.Verse != 0 && p.EndChapter == 0 && (p.EndVerse == 0 || p.EndVerse == p.Verse)
}

// Start is the first verse of a passage that names one.
func (p Passage) Start() data.Reference {
	return data.Reference{Book: p.Book, Chapter: p.Chapter, Verse: p.Verse}
}

func (p Passage) String() string {
	var b strings.Builder
	b.WriteString(p.Book)
	if p.Chapter == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, " %d", p.Chapter)
	if p.Verse != 0 {
		fmt.Fprintf(&b, ":%d", p.Verse)
	}
	switch {
	case p.EndChapter != 0:
		fmt.Fprintf(&b, "-%d", p.EndChapter)
		if p.EndVerse != 0 {
			fmt.Fprintf(&b, ":%d", p.EndVerse)
		}
	case p.EndVerse != 0:
		fmt.Fprintf(&b, "-%d", p.EndVerse)
	}
	return b.String()
}
