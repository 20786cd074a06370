package app

import (
	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <title>",
		Short: "Look up a book by exact title",
		Long: `Look up a book by exact title (case-insensitive). With duplicate
titles, the first match in catalog order is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadLibrary()
			if err != nil {
				return err
			}
			b, err := mustFind(books, args[0])
			if err != nil {
				return err
			}
			printBook(b)
			return nil
		},
	}
	return cmd
}
