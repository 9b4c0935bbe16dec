package integrations

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// KindleFormat is an output format Kindle devices read.
type KindleFormat string

const (
	FormatMOBI KindleFormat = "mobi" // Legacy MOBI format
	FormatAZW3 KindleFormat = "azw3" // Kindle Format 8 (KF8)
)

func ParseKindleFormat(s string) (KindleFormat, error) {
	switch f := KindleFormat(strings.ToLower(s)); f {
	case FormatMOBI, FormatAZW3:
		return f, nil
	}
	return "", fmt.Errorf("unsupported Kindle format %q (use mobi or azw3)", s)
}

// KindleConverter turns an exported EPUB into a Kindle format with an
// external tool: Calibre's ebook-convert, or kindlegen for MOBI.
type KindleConverter struct {
	format KindleFormat
}

func NewKindleConverter(format KindleFormat) *KindleConverter {
	return &KindleConverter{format: format}
}

// Convert writes the converted book next to epubPath and returns its path.
func (c *KindleConverter) Convert(ctx context.Context, epubPath, title, author string) (string, error) {
	outputPath := strings.TrimSuffix(epubPath, filepath.Ext(epubPath)) + "." + string(c.format)

	calibreErr := c.convertWithCalibre(ctx, epubPath, outputPath, title, author)
	if calibreErr == nil {
		return outputPath, nil
	}

	if c.format == FormatMOBI {
		if err := c.convertWithKindlegen(ctx, epubPath, outputPath); err == nil {
			return outputPath, nil
		}
	}

	return "", fmt.Errorf("no conversion tool available (tried ebook-convert, kindlegen), install Calibre or keep the EPUB: %w", calibreErr)
}

func (c *KindleConverter) convertWithCalibre(ctx context.Context, input, output, title, author string) error {
	args := []string{
		input,
		output,
		"--output-profile", "kindle",
		"--no-inline-toc",
	}
	if title != "" {
		args = append(args, "--title", title)
	}
	if author != "" {
		args = append(args, "--authors", author)
	}

	cmd := exec.CommandContext(ctx, "ebook-convert", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ebook-convert failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (c *KindleConverter) convertWithKindlegen(ctx context.Context, input, output string) error {
	cmd := exec.CommandContext(ctx, "kindlegen", input, "-o", filepath.Base(output))
	cmd.Dir = filepath.Dir(input)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("kindlegen failed: %w", err)
	}

	// kindlegen writes next to its input.
	generatedPath := strings.TrimSuffix(input, filepath.Ext(input)) + ".mobi"
	if generatedPath != output {
		if err := os.Rename(generatedPath, output); err != nil {
			return fmt.Errorf("failed to move output: %w", err)
		}
	}
	return nil
}
