package data

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to exactly one of them,
// so callers can branch with errors.Is and inspect details with errors.As.
var (
	ErrInvalidTranslation = errors.New("invalid translation")
	ErrInvalidBook        = errors.New("invalid book")
	ErrChapterOutOfRange  = errors.New("chapter out of range")
	ErrVerseOutOfRange    = errors.New("verse out of range")
	ErrMissingCredential  = errors.New("missing credential")
	ErrRemoteService      = errors.New("remote service error")
	ErrMalformedResponse  = errors.New("malformed response")
	// ErrDataIntegrity marks a local dataset that lacks a chapter the
	// canonical table says exists.
	ErrDataIntegrity = errors.New("data integrity fault")
)

type TranslationError struct {
	Translation string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s is not a supported translation, choose one of %v", e.Translation, translations)
}

func (e *TranslationError) Unwrap() error { return ErrInvalidTranslation }

type BookError struct {
	Book string
}

func (e *BookError) Error() string {
	return fmt.Sprintf("invalid book %q", e.Book)
}

func (e *BookError) Unwrap() error { return ErrInvalidBook }

type ChapterRangeError struct {
	Book    string
	Chapter int
	Max     int
}

func (e *ChapterRangeError) Error() string {
	return fmt.Sprintf("%s does not contain chapter %d (1-%d)", e.Book, e.Chapter, e.Max)
}

func (e *ChapterRangeError) Unwrap() error { return ErrChapterOutOfRange }

type VerseRangeError struct {
	Reference Reference
}

func (e *VerseRangeError) Error() string {
	return fmt.Sprintf("%s chapter %d does not contain verse %d",
		e.Reference.Book, e.Reference.Chapter, e.Reference.Verse)
}

func (e *VerseRangeError) Unwrap() error { return ErrVerseOutOfRange }

// RemoteServiceError carries the HTTP status of a non-2xx response.
type RemoteServiceError struct {
	StatusCode int
	Status     string
}

func (e *RemoteServiceError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("remote service returned %s", e.Status)
	}
	return fmt.Sprintf("remote service returned status %d", e.StatusCode)
}

func (e *RemoteServiceError) Unwrap() error { return ErrRemoteService }

type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedResponse, e.Err}
	}
	return []error{ErrMalformedResponse}
}

// IntegrityError reports a dataset that is missing or unreadable for a
// chapter that passed canonical validation.
type IntegrityError struct {
	Book    string
	Chapter int
	Path    string
	Err     error
}

func (e *IntegrityError) Error() string {
	msg := fmt.Sprintf("dataset has no chapter %d for %s", e.Chapter, e.Book)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IntegrityError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDataIntegrity, e.Err}
	}
	return []error{ErrDataIntegrity}
}
