package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/kerbaras/pible/pkg/bible"
	"github.com/kerbaras/pible/pkg/config"
	"github.com/kerbaras/pible/pkg/data"
	"github.com/kerbaras/pible/pkg/integrations"
	"github.com/kerbaras/pible/pkg/ref"
	"github.com/kerbaras/pible/pkg/sources"
	"go.uber.org/zap"
)

// VerseText is one resolved verse of a passage.
type VerseText struct {
	Reference data.Reference
	Text      string
}

// ExportProgress reports how far an export has come.
type ExportProgress struct {
	Book    string
	Chapter int
	Current int
	Total   int
	Status  string // "resolving", "writing", "complete", "error"
	Error   error
}

// Reader answers passage lookups and exports for one translation.
type Reader struct {
	bible        *bible.Bible
	logger       *zap.Logger
	progressChan chan ExportProgress

	mu     sync.Mutex
	closed bool
}

// ErrReaderClosed is returned by Export after Close.
var ErrReaderClosed = errors.New("reader closed")

// NewReader wires the resolvers described by cfg. cfg.Translation and
// cfg.APIKey select the translation and credential.
func NewReader(cfg *config.Config, logger *zap.Logger) (*Reader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	translation, err := cfg.DefaultTranslation()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.HTTPTimeout()
	if err != nil {
		return nil, err
	}

	registry := sources.NewRegistry(
		sources.NewLocalDir(cfg.DataDir, sources.WithLocalLogger(logger)),
		sources.NewESV(
			sources.WithEndpoint(cfg.Endpoint),
			sources.WithHTTPClient(&http.Client{Timeout: timeout}),
			sources.WithESVLogger(logger),
		),
	)
	b, err := bible.New(translation, cfg.APIKey, bible.WithRegistry(registry), bible.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return NewReaderWithBible(b, logger), nil
}

func NewReaderWithBible(b *bible.Bible, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		bible:        b,
		logger:       logger,
		progressChan: make(chan ExportProgress, 100),
	}
}

func (r *Reader) Bible() *bible.Bible { return r.bible }

// GetProgressChannel returns the channel export progress is reported on.
func (r *Reader) GetProgressChannel() <-chan ExportProgress {
	return r.progressChan
}

// Passage parses s and looks it up.
func (r *Reader) Passage(ctx context.Context, s string) ([]VerseText, error) {
	p, err := ref.Parse(s)
	if err != nil {
		return nil, err
	}
	return r.Lookup(ctx, p)
}

// Lookup resolves every verse the passage covers, in order.
func (r *Reader) Lookup(ctx context.Context, p ref.Passage) ([]VerseText, error) {
	book, err := r.bible.Book(p.Book)
	if err != nil {
		return nil, err
	}

	if p.WholeBook() {
		var out []VerseText
		for _, ch := range book.Chapters() {
			verses, err := r.wholeChapter(ctx, ch)
			if err != nil {
				return nil, err
			}
			out = append(out, verses...)
		}
		return out, nil
	}

	var out []VerseText
	for n := p.Chapter; n <= p.LastChapter(); n++ {
		ch, err := book.Chapter(n)
		if err != nil {
			return nil, err
		}

		from, to := 1, 0
		if n == p.Chapter && p.Verse != 0 {
			from = p.Verse
			if p.EndChapter == 0 {
				to = p.Verse
				if p.EndVerse != 0 {
					to = p.EndVerse
				}
			}
		}
		if n == p.EndChapter && p.EndVerse != 0 {
			to = p.EndVerse
		}

		var verses []VerseText
		if from == 1 && to == 0 {
			verses, err = r.wholeChapter(ctx, ch)
		} else {
			verses, err = r.chapterSlice(ctx, ch, from, to)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, verses...)
	}
	return out, nil
}

func (r *Reader) wholeChapter(ctx context.Context, ch bible.Chapter) ([]VerseText, error) {
	verses, err := ch.Verses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VerseText, 0, len(verses))
	for _, v := range verses {
		// Already resolved while probing.
		text, err := v.Text(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, VerseText{Reference: v.Reference(), Text: text})
	}
	return out, nil
}

// chapterSlice resolves verses from..to. A zero to reads until the chapter
// runs out, but the first verse must exist.
func (r *Reader) chapterSlice(ctx context.Context, ch bible.Chapter, from, to int) ([]VerseText, error) {
	var out []VerseText
	for n := from; to == 0 || n <= to; n++ {
		v := ch.Verse(n)
		text, err := v.Text(ctx)
		if err != nil {
			if to == 0 && n > from && errors.Is(err, data.ErrVerseOutOfRange) {
				break
			}
			return nil, err
		}
		out = append(out, VerseText{Reference: v.Reference(), Text: text})
	}
	return out, nil
}

// Export resolves chapters from..to of book and streams them into exporter.
// A zero to exports through the last chapter.
func (r *Reader) Export(ctx context.Context, exporter integrations.Exporter, bookName string, from, to int) (string, error) {
	if r.isClosed() {
		return "", ErrReaderClosed
	}
	book, err := r.bible.Book(bookName)
	if err != nil {
		return "", err
	}
	if from == 0 {
		from = 1
	}
	if to == 0 {
		to = book.ChapterCount()
	}
	if from > to {
		return "", fmt.Errorf("chapter range %d-%d is empty", from, to)
	}
	// Validate both ends before doing any I/O.
	if _, err := book.Chapter(from); err != nil {
		return "", err
	}
	if _, err := book.Chapter(to); err != nil {
		return "", err
	}

	if err := exporter.Init(book.Name(), r.bible.Translation()); err != nil {
		return "", err
	}

	total := to - from + 1
	for n := from; n <= to; n++ {
		ch, _ := book.Chapter(n)
		r.sendProgress(ExportProgress{Book: book.Name(), Chapter: n, Current: n - from, Total: total, Status: "resolving"})

		verses, err := r.wholeChapter(ctx, ch)
		if err != nil {
			r.sendProgress(ExportProgress{Book: book.Name(), Chapter: n, Current: n - from, Total: total, Status: "error", Error: err})
			return "", fmt.Errorf("chapter %d: %w", n, err)
		}
		text := integrations.ChapterText{Book: book.Name(), Number: n, Verses: make([]string, len(verses))}
		for i, v := range verses {
			text.Verses[i] = v.Text
		}
		if err := exporter.Next(text); err != nil {
			return "", fmt.Errorf("chapter %d: %w", n, err)
		}
		r.logger.Debug("chapter exported", zap.String("book", book.Name()), zap.Int("chapter", n), zap.Int("verses", len(verses)))
	}

	r.sendProgress(ExportProgress{Book: book.Name(), Current: total, Total: total, Status: "writing"})
	path, err := exporter.Done()
	if err != nil {
		return "", err
	}
	r.sendProgress(ExportProgress{Book: book.Name(), Current: total, Total: total, Status: "complete"})
	return path, nil
}

// sendProgress sends a progress update (non-blocking). Updates after Close
// are dropped.
func (r *Reader) sendProgress(progress ExportProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

func (r *Reader) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Close closes the progress channel. Exports still running finish without
// reporting progress.
func (r *Reader) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.progressChan)
}
