// Package bible exposes the Bible → Book → Chapter → Verse hierarchy.
//
// Every handle is cheap to build and validated against the canonical book
// table at construction. Only Verse.Text performs I/O: it resolves the verse
// through the resolver registered for the handle's translation and caches
// the result for the lifetime of that Verse.
package bible

import (
	"sync"

	"github.com/kerbaras/pible/pkg/data"
	"github.com/kerbaras/pible/pkg/sources"
	"go.uber.org/zap"
)

// session is the immutable state every handle derived from one root shares.
type session struct {
	translation data.Translation
	credential  string
	registry    *sources.Registry
	logger      *zap.Logger
}

type Option func(*session)

// WithRegistry resolves text through r instead of the default registry.
func WithRegistry(r *sources.Registry) Option {
	return func(s *session) {
		if r != nil {
			s.registry = r
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *sources.Registry
)

// DefaultRegistry serves KJV from sources.DefaultDataDir and ESV from the
// public passage API.
func DefaultRegistry() *sources.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = sources.NewRegistry(
			sources.NewLocalDir(sources.DefaultDataDir()),
			sources.NewESV(),
		)
	})
	return defaultRegistry
}

func newSession(translation data.Translation, credential string, opts []Option) (*session, error) {
	if !translation.Valid() {
		return nil, &data.TranslationError{Translation: string(translation)}
	}
	s := &session{translation: translation, credential: credential, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	return s, nil
}

// Bible is the root handle for one translation.
type Bible struct {
	s *session
}

// New returns a root handle. credential is only needed by remote
// translations and may be empty otherwise.
func New(translation data.Translation, credential string, opts ...Option) (*Bible, error) {
	s, err := newSession(translation, credential, opts)
	if err != nil {
		return nil, err
	}
	return &Bible{s: s}, nil
}

func (b *Bible) Translation() data.Translation { return b.s.translation }

func (b *Bible) Credential() string { return b.s.credential }

// Book returns the named book, failing with data.ErrInvalidBook when the
// name is not canonical.
func (b *Bible) Book(name string) (Book, error) {
	return newBook(b.s, name)
}

// Books returns every canonical book in order.
func (b *Bible) Books() []Book {
	names := data.BookNames()
	books := make([]Book, 0, len(names))
	for _, name := range names {
		book, err := newBook(b.s, name)
		if err != nil {
			// The canonical table only yields valid names.
			panic(err)
		}
		books = append(books, book)
	}
	return books
}

// Verse builds a verse handle from a reference, validating book and chapter.
func (b *Bible) Verse(ref data.Reference) (*Verse, error) {
	return newVerse(b.s, ref.Book, ref.Chapter, ref.Verse)
}

func (b *Bible) String() string {
	return "<Bible " + b.s.translation.String() + ">"
}
