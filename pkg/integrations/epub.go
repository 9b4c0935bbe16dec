package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/pible/pkg/data"
)

// EPubBuilder streams chapters of one book into an EPUB file.
type EPubBuilder struct {
	outputDir   string
	book        string
	translation data.Translation
	e           *epub.Epub
	chapters    int
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// Init starts a new EPUB for book, discarding any unfinished one.
func (b *EPubBuilder) Init(book string, translation data.Translation) error {
	title := fmt.Sprintf("%s (%s)", book, translation)
	e, err := epub.NewEpub(title)
	if err != nil {
		return fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor(translation.String())
	e.SetLang("en")
	e.SetDescription(fmt.Sprintf("The book of %s, %s translation", book, translation))

	b.e = e
	b.book = book
	b.translation = translation
	b.chapters = 0
	return nil
}

// Next appends a chapter as its own section.
func (b *EPubBuilder) Next(chapter ChapterText) error {
	if b.e == nil {
		return fmt.Errorf("builder not initialized")
	}
	if chapter.Book != b.book {
		return fmt.Errorf("chapter of %s added to %s", chapter.Book, b.book)
	}
	if len(chapter.Verses) == 0 {
		return fmt.Errorf("%s %d has no verses", chapter.Book, chapter.Number)
	}

	title := fmt.Sprintf("Chapter %d", chapter.Number)
	filename := fmt.Sprintf("chapter-%03d.xhtml", chapter.Number)
	if _, err := b.e.AddSection(chapterHTML(title, chapter.Verses), title, filename, ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	b.chapters++
	return nil
}

// Done writes the EPUB and returns its path.
func (b *EPubBuilder) Done() (string, error) {
	if b.e == nil {
		return "", fmt.Errorf("builder not initialized")
	}
	if b.chapters == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := sanitizeFilename(fmt.Sprintf("%s (%s)", b.book, b.translation))
	outputPath := filepath.Join(b.outputDir, name+".epub")
	if err := b.e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	b.e = nil
	return outputPath, nil
}

func chapterHTML(title string, verses []string) string {
	var body strings.Builder
	fmt.Fprintf(&body, "<h1>%s</h1>\n<p>", html.EscapeString(title))
	for i, text := range verses {
		if i > 0 {
			body.WriteString(" ")
		}
		fmt.Fprintf(&body, "<sup>%d</sup>%s", i+1, html.EscapeString(text))
	}
	body.WriteString("</p>\n")
	return body.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
