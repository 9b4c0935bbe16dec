package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonHas66UniqueBooks(t *testing.T) {
	names := BookNames()
	assert.Len(t, names, 66)
	assert.Equal(t, "Genesis", names[0])
	assert.Equal(t, "Revelation", names[65])

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate book %s", name)
		seen[name] = true
	}
}

func TestChapterCount(t *testing.T) {
	n, err := ChapterCount("John")
	require.NoError(t, err)
	assert.Equal(t, 21, n)

	n, err = ChapterCount("Psalms")
	require.NoError(t, err)
	assert.Equal(t, 150, n)

	n, err = ChapterCount("2 Thessalonians")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ChapterCount("Joe")
	assert.ErrorIs(t, err, ErrInvalidBook)
	var bookErr *BookError
	require.ErrorAs(t, err, &bookErr)
	assert.Equal(t, "Joe", bookErr.Book)
}

func TestBooksReturnsCopy(t *testing.T) {
	books := Books()
	books[0].Chapters = 1

	n, err := ChapterCount("Genesis")
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"john", "John", true},
		{"SONG  of solomon", "Song of Solomon", true},
		{" 1 john ", "1 John", true},
		{"1John", "1 John", true},
		{"Gen", "Genesis", true},
		{"gen.", "Genesis", true},
		{"1 Cor.", "1 Corinthians", true},
		{"Rev", "Revelation", true},
		{"Joe", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalName(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "SongofSolomon", FileName("Song of Solomon"))
	assert.Equal(t, "1John", FileName("1 John"))
	assert.Equal(t, "John", FileName("John"))
}

func TestParseTranslation(t *testing.T) {
	tr, err := ParseTranslation("kjv")
	require.NoError(t, err)
	assert.Equal(t, KJV, tr)
	assert.False(t, tr.Remote())

	tr, err = ParseTranslation("ESV")
	require.NoError(t, err)
	assert.True(t, tr.Remote())

	_, err = ParseTranslation("NIV")
	assert.ErrorIs(t, err, ErrInvalidTranslation)
	assert.Contains(t, err.Error(), "NIV")
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	chapterErr := error(&ChapterRangeError{Book: "John", Chapter: 99, Max: 21})
	assert.ErrorIs(t, chapterErr, ErrChapterOutOfRange)
	assert.False(t, errors.Is(chapterErr, ErrInvalidBook))
	assert.Equal(t, "John does not contain chapter 99 (1-21)", chapterErr.Error())

	verseErr := error(&VerseRangeError{Reference: Reference{"John", 3, 99}})
	assert.ErrorIs(t, verseErr, ErrVerseOutOfRange)
	assert.False(t, errors.Is(verseErr, ErrDataIntegrity))

	integrity := error(&IntegrityError{Book: "John", Chapter: 3})
	assert.ErrorIs(t, integrity, ErrDataIntegrity)
	assert.False(t, errors.Is(integrity, ErrVerseOutOfRange))
}

func TestMalformedResponseWrapsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := error(&MalformedResponseError{Reason: "decode body", Err: cause})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorIs(t, err, cause)
}

func TestReferenceString(t *testing.T) {
	assert.Equal(t, "John 3:16", Reference{Book: "John", Chapter: 3, Verse: 16}.String())
}
