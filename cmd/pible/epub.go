package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kerbaras/pible/pkg/app/components"
	"github.com/kerbaras/pible/pkg/data"
	"github.com/kerbaras/pible/pkg/integrations"
	"github.com/spf13/cobra"
)

var epubCmd = &cobra.Command{
	Use:   "epub [book]",
	Short: "Export a book as an EPUB",
	Long:  "Resolve every verse of a book, or a range of its chapters, and write them to an EPUB",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chaptersFlag, _ := cmd.Flags().GetString("chapters")
		outDir, _ := cmd.Flags().GetString("out")
		kindleFlag, _ := cmd.Flags().GetString("kindle")
		if outDir == "" {
			outDir = defaultExportDir()
		}

		from, to, err := parseChapterRange(chaptersFlag)
		if err != nil {
			return err
		}
		var converter *integrations.KindleConverter
		if kindleFlag != "" {
			format, err := integrations.ParseKindleFormat(kindleFlag)
			if err != nil {
				return err
			}
			converter = integrations.NewKindleConverter(format)
		}

		name := strings.Join(args, " ")
		book, ok := data.CanonicalName(name)
		if !ok {
			return &data.BookError{Book: name}
		}

		reader, err := newReader()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		done := make(chan struct{})
		go func() {
			defer close(done)
			for progress := range reader.GetProgressChannel() {
				switch progress.Status {
				case "resolving":
					fmt.Fprintf(out, "  %s %d (%d/%d) %s\n", progress.Book, progress.Chapter, progress.Current+1, progress.Total,
						components.SimpleProgress(progress.Current, progress.Total, 20))
				case "writing":
					fmt.Fprintln(out, "  writing EPUB...")
				}
			}
		}()

		path, err := reader.Export(cmd.Context(), integrations.NewEPubBuilder(outDir), book, from, to)
		reader.Close()
		<-done
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Fprintf(out, "📖 EPUB created: %s\n", path)

		if converter != nil {
			title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			kindlePath, err := converter.Convert(cmd.Context(), path, title, reader.Bible().Translation().String())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "📱 Kindle file created: %s\n", kindlePath)
		}
		return nil
	},
}

func init() {
	epubCmd.Flags().StringP("chapters", "c", "", "chapter range (e.g. 1-3 or 5)")
	epubCmd.Flags().StringP("out", "o", "", "output directory (default ~/Downloads)")
	epubCmd.Flags().StringP("kindle", "k", "", "also convert to a Kindle format (mobi or azw3)")
}

// parseChapterRange reads "3" or "1-10". Empty means the whole book.
func parseChapterRange(s string) (from, to int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	first, last, isRange := strings.Cut(s, "-")
	if from, err = strconv.Atoi(strings.TrimSpace(first)); err != nil || from < 1 {
		return 0, 0, fmt.Errorf("invalid chapter range %q, use --chapters 1-10", s)
	}
	if !isRange {
		return from, from, nil
	}
	if to, err = strconv.Atoi(strings.TrimSpace(last)); err != nil || to < from {
		return 0, 0, fmt.Errorf("invalid chapter range %q, use --chapters 1-10", s)
	}
	return from, to, nil
}
