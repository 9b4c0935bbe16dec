package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	refStyle  = lipgloss.NewStyle().Bold(true)
	numStyle  = lipgloss.NewStyle().Faint(true)
	plainText bool
)

var verseCmd = &cobra.Command{
	Use:     "verse [reference]",
	Aliases: []string{"read"},
	Short:   "Print a verse or passage",
	Long:    "Print scripture for a reference such as \"John 3:16\", \"John 3\", \"John 3:16-18\" or \"Ruth\"",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := newReader()
		if err != nil {
			return err
		}
		defer reader.Close()

		verses, err := reader.Passage(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(verses) == 1 {
			fmt.Fprintf(out, "%s %s\n", render(refStyle, verses[0].Reference.String()), verses[0].Text)
			return nil
		}

		chapter := 0
		for _, v := range verses {
			if v.Reference.Chapter != chapter {
				if chapter != 0 {
					fmt.Fprintln(out)
				}
				chapter = v.Reference.Chapter
				fmt.Fprintln(out, render(refStyle, fmt.Sprintf("%s %d", v.Reference.Book, chapter)))
			}
			fmt.Fprintf(out, "%s %s\n", render(numStyle, fmt.Sprint(v.Reference.Verse)), v.Text)
		}
		return nil
	},
}

func init() {
	verseCmd.Flags().BoolVar(&plainText, "plain", false, "print without styling")
}

func render(style lipgloss.Style, s string) string {
	if plainText {
		return s
	}
	return style.Render(s)
}
