package integrations

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTool puts an executable script named name on an otherwise empty PATH.
func fakeTool(t *testing.T, name, script string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

func TestParseKindleFormat(t *testing.T) {
	for _, in := range []string{"mobi", "AZW3"} {
		if _, err := ParseKindleFormat(in); err != nil {
			t.Errorf("ParseKindleFormat(%q) failed: %v", in, err)
		}
	}
	if _, err := ParseKindleFormat("kfx"); err == nil {
		t.Error("Expected kfx to be rejected")
	}
}

func TestKindleConvertWithCalibre(t *testing.T) {
	// Copy input to output and record the arguments.
	fakeTool(t, "ebook-convert", `/bin/cp "$1" "$2"; echo "$@" > "$2.args"`)

	epubPath := filepath.Join(t.TempDir(), "Ruth (KJV).epub")
	if err := os.WriteFile(epubPath, []byte("epub"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := NewKindleConverter(FormatAZW3).Convert(context.Background(), epubPath, "Ruth (KJV)", "KJV")
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}
	if filepath.Base(out) != "Ruth (KJV).azw3" {
		t.Errorf("Unexpected output path %s", out)
	}
	args, err := os.ReadFile(out + ".args")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(args), "--output-profile kindle") || !strings.Contains(string(args), "--authors KJV") {
		t.Errorf("Unexpected ebook-convert arguments: %s", args)
	}
}

func TestKindleConvertNoTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewKindleConverter(FormatMOBI).Convert(context.Background(), filepath.Join(t.TempDir(), "x.epub"), "", "")
	if err == nil || !strings.Contains(err.Error(), "no conversion tool available") {
		t.Errorf("Expected missing tool error, got %v", err)
	}
}
