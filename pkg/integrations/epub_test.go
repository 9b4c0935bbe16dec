package integrations

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/pible/pkg/data"
)

func TestEPubBuilder(t *testing.T) {
	outputDir := t.TempDir()
	builder := NewEPubBuilder(outputDir)

	if err := builder.Init("Song of Solomon", data.KJV); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	chapters := []ChapterText{
		{Book: "Song of Solomon", Number: 1, Verses: []string{"The song of songs, which is Solomon's."}},
		{Book: "Song of Solomon", Number: 2, Verses: []string{"I am the rose of Sharon, and the lily of the valleys.", "As the lily among thorns, so is my love among the daughters."}},
	}
	for _, ch := range chapters {
		if err := builder.Next(ch); err != nil {
			t.Fatalf("Next(%d) failed: %v", ch.Number, err)
		}
	}

	epubPath, err := builder.Done()
	if err != nil {
		t.Fatalf("Done() failed: %v", err)
	}

	if filepath.Dir(epubPath) != outputDir {
		t.Errorf("Expected EPub in %s, got %s", outputDir, filepath.Dir(epubPath))
	}
	if filepath.Base(epubPath) != "Song of Solomon (KJV).epub" {
		t.Errorf("Unexpected filename '%s'", filepath.Base(epubPath))
	}

	r, err := zip.OpenReader(epubPath)
	if err != nil {
		t.Fatalf("EPub is not a zip archive: %v", err)
	}
	defer r.Close()

	var found bool
	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, "chapter-002.xhtml") {
			continue
		}
		found = true
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open section: %v", err)
		}
		content, _ := io.ReadAll(rc)
		rc.Close()
		if !strings.Contains(string(content), "<sup>2</sup>As the lily among thorns") {
			t.Errorf("chapter 2 section is missing verse 2:\n%s", content)
		}
	}
	if !found {
		t.Error("chapter 2 section not found in EPub")
	}
}

func TestEPubBuilderRequiresInit(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())

	if err := builder.Next(ChapterText{Book: "Jude", Number: 1, Verses: []string{"x"}}); err == nil {
		t.Error("Next() should fail before Init()")
	}
	if _, err := builder.Done(); err == nil {
		t.Error("Done() should fail before Init()")
	}
}

func TestEPubBuilderNoChapters(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())
	if err := builder.Init("Jude", data.KJV); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := builder.Done(); err == nil {
		t.Error("Expected error when creating EPub with no chapters")
	}
}

func TestEPubBuilderRejectsForeignChapter(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())
	if err := builder.Init("Jude", data.KJV); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := builder.Next(ChapterText{Book: "Ruth", Number: 1, Verses: []string{"x"}}); err == nil {
		t.Error("Next() should reject a chapter of another book")
	}
	if err := builder.Next(ChapterText{Book: "Jude", Number: 1}); err == nil {
		t.Error("Next() should reject an empty chapter")
	}
}

func TestChapterHTMLEscapes(t *testing.T) {
	got := chapterHTML("Chapter 1", []string{"a < b", "c & d"})
	want := "<h1>Chapter 1</h1>\n<p><sup>1</sup>a &lt; b <sup>2</sup>c &amp; d</p>\n"
	if got != want {
		t.Errorf("chapterHTML() = %q, want %q", got, want)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"John (KJV)": "John (KJV)",
		"a/b:c?":     "a_b_c_",
		" .hidden. ": "hidden",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
