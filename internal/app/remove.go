package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Delete a book from the catalog",
		Long: `Delete the first book whose title matches (case-insensitive). With
duplicate titles, run remove once per copy to delete.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadLibrary()
			if err != nil {
				return err
			}
			books, found := catalog.Remove(books, args[0])
			if !found {
				warn("No book titled %q in the library", args[0])
				return nil
			}
			if err := saveLibrary(books); err != nil {
				return err
			}
			ok("Removed %q", args[0])
			return nil
		},
	}
}
