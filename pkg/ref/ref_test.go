package ref

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kerbaras/pible/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Passage
		str  string
	}{
		{"John 3:16", Passage{Book: "John", Chapter: 3, Verse: 16}, "John 3:16"},
		{"john 3:16", Passage{Book: "John", Chapter: 3, Verse: 16}, "John 3:16"},
		{"1 John 4:8", Passage{Book: "1 John", Chapter: 4, Verse: 8}, "1 John 4:8"},
		{"Song of Solomon 2:1", Passage{Book: "Song of Solomon", Chapter: 2, Verse: 1}, "Song of Solomon 2:1"},
		{"John 3:16-18", Passage{Book: "John", Chapter: 3, Verse: 16, EndVerse: 18}, "John 3:16-18"},
		{"John 3", Passage{Book: "John", Chapter: 3}, "John 3"},
		{"John 3-4", Passage{Book: "John", Chapter: 3, EndChapter: 4}, "John 3-4"},
		{"John 3:36-4:2", Passage{Book: "John", Chapter: 3, Verse: 36, EndChapter: 4, EndVerse: 2}, "John 3:36-4:2"},
		{"Genesis", Passage{Book: "Genesis"}, "Genesis"},
		{"Genesis.1.1", Passage{Book: "Genesis", Chapter: 1, Verse: 1}, "Genesis 1:1"},
		{"Jude.1", Passage{Book: "Jude", Chapter: 1}, "Jude 1"},
		{"Gen.1.1", Passage{Book: "Genesis", Chapter: 1, Verse: 1}, "Genesis 1:1"},
		{"Gen 1:1", Passage{Book: "Genesis", Chapter: 1, Verse: 1}, "Genesis 1:1"},
		{"1John 4:8", Passage{Book: "1 John", Chapter: 4, Verse: 8}, "1 John 4:8"},
		{"1 Cor. 13:4-7", Passage{Book: "1 Corinthians", Chapter: 13, Verse: 4, EndVerse: 7}, "1 Corinthians 13:4-7"},
		{"Rev.22", Passage{Book: "Revelation", Chapter: 22}, "Revelation 22"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestParseUnknownBook(t *testing.T) {
	_, err := Parse("Joe 3:16")
	assert.ErrorIs(t, err, data.ErrInvalidBook)
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "3:16", "John 3:", "John 3:18-16", "John 4-3", "John 3:16-", "John 3-", "John 3:16-4:"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestPassageShape(t *testing.T) {
	p := MustParse("John 3:16")
	assert.True(t, p.Single())
	assert.False(t, p.WholeChapters())
	assert.Equal(t, data.Reference{Book: "John", Chapter: 3, Verse: 16}, p.Start())

	p = MustParse("John 3-4")
	assert.True(t, p.WholeChapters())
	assert.Equal(t, 4, p.LastChapter())

	p = MustParse("Ruth")
	assert.True(t, p.WholeBook())
}
