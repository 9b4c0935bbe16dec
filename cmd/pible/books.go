package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pible/pkg/app/styles"
	"github.com/kerbaras/pible/pkg/data"
	"github.com/spf13/cobra"
)

// Genesis through Malachi.
const oldTestamentBooks = 39

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the books of the Bible",
	Long:  "Display the 66 books in canonical order with their chapter counts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		columns := []table.Column{
			{Title: "#", Width: 4},
			{Title: "Book", Width: 20},
			{Title: "Chapters", Width: 10},
			{Title: "Testament", Width: 10},
		}

		books := data.Books()
		rows := make([]table.Row, 0, len(books))
		for i, book := range books {
			testament := "Old"
			if i >= oldTestamentBooks {
				testament = "New"
			}
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				book.Name,
				strconv.Itoa(book.Chapters),
				testament,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
		)

		s := table.DefaultStyles()
		s.Header = styles.TableHeaderStyle.Padding(0, 1)
		// Nothing is focused; keep the first row plain.
		s.Selected = s.Cell
		t.SetStyles(s)
		// The table height counts the header, border included.
		t.SetHeight(len(rows) + lipgloss.Height(s.Header.Render(columns[0].Title)))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n📖 The Bible (%d books)\n\n", len(books))
		fmt.Fprintln(out, t.View())
	},
}
