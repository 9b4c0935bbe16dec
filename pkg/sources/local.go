package sources

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kerbaras/pible/pkg/data"
	"go.uber.org/zap"
)

// book is the on-disk shape of one dataset file: chapter -> verse -> text,
// both keyed by their decimal number.
type book map[string]map[string]string

// Local resolves verses from a directory of per-book JSON files.
type Local struct {
	fsys   fs.FS
	logger *zap.Logger
}

type LocalOption func(*Local)

func WithLocalLogger(logger *zap.Logger) LocalOption {
	return func(l *Local) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLocal(fsys fs.FS, opts ...LocalOption) *Local {
	l := &Local{fsys: fsys, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultDataDir is where the KJV dataset is looked up when no directory is
// configured: $XDG_DATA_HOME/pible/kjv_json, falling back to
// ~/.local/share/pible/kjv_json.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "pible", "kjv_json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("pible", "kjv_json")
	}
	return filepath.Join(home, ".local", "share", "pible", "kjv_json")
}

// NewLocalDir reads the dataset from dir on the host filesystem.
func NewLocalDir(dir string, opts ...LocalOption) *Local {
	return NewLocal(os.DirFS(dir), opts...)
}

// Resolve reads the book file and returns the verse text. A missing verse
// key is a *data.VerseRangeError; a missing chapter or unreadable book is a
// *data.IntegrityError since construction already checked the chapter.
func (l *Local) Resolve(ctx context.Context, ref data.Reference, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := data.FileName(ref.Book) + ".json"
	chapters, err := l.load(path)
	if err != nil {
		return "", &data.IntegrityError{Book: ref.Book, Chapter: ref.Chapter, Path: path, Err: err}
	}

	verses, ok := chapters[strconv.Itoa(ref.Chapter)]
	if !ok {
		return "", &data.IntegrityError{Book: ref.Book, Chapter: ref.Chapter, Path: path}
	}
	text, ok := verses[strconv.Itoa(ref.Verse)]
	if !ok {
		return "", &data.VerseRangeError{Reference: ref}
	}

	l.logger.Debug("resolved verse",
		zap.String("translation", data.KJV.String()),
		zap.Stringer("ref", ref))
	return text, nil
}

func (l *Local) load(path string) (book, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b book
	if err := json.NewDecoder(f).Decode(&b); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errors.New("empty dataset file")
	}
	return b, nil
}
