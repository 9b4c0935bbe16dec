package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerbaras/pible/pkg/bible"
	"github.com/kerbaras/pible/pkg/data"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [book]",
	Short: "List the chapters of a book",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		translation, err := cfg.DefaultTranslation()
		if err != nil {
			return err
		}
		name, ok := data.CanonicalName(strings.Join(args, " "))
		if !ok {
			return &data.BookError{Book: strings.Join(args, " ")}
		}
		book, err := bible.NewBook(translation, cfg.APIKey, name, bible.WithLogger(logger))
		if err != nil {
			return err
		}

		numbers := make([]string, 0, book.ChapterCount())
		for _, ch := range book.Chapters() {
			numbers = append(numbers, strconv.Itoa(ch.Number()))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s has %d chapters\n", book.Name(), book.ChapterCount())
		fmt.Fprintln(out, strings.Join(numbers, " "))
		return nil
	},
}
