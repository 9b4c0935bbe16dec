package data

import (
	"fmt"
	"strings"
)

// Translation identifies a text edition. The set is closed: only the
// values returned by Translations are accepted anywhere a translation is.
type Translation string

const (
	// KJV is read from the bundled local dataset.
	KJV Translation = "KJV"
	// ESV is fetched from the remote passage API and needs a credential.
	ESV Translation = "ESV"
)

var translations = []Translation{KJV, ESV}

// Translations returns the supported translations in a fixed order.
func Translations() []Translation {
	out := make([]Translation, len(translations))
	copy(out, translations)
	return out
}

// Valid reports whether t is one of the supported translations.
func (t Translation) Valid() bool {
	for _, known := range translations {
		if t == known {
			return true
		}
	}
	return false
}

// Remote reports whether the translation is served over the network.
func (t Translation) Remote() bool {
	return t == ESV
}

func (t Translation) String() string {
	return string(t)
}

// ParseTranslation accepts a translation tag in any letter case.
func ParseTranslation(s string) (Translation, error) {
	t := Translation(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &TranslationError{Translation: s}
	}
	return t, nil
}

type CanonicalBook struct {
	Name     string
	Chapters int
}

// Reference is a single verse coordinate.
type Reference struct {
	Book    string
	Chapter int
	Verse   int
}

func (r Reference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}
