package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
	"github.com/blackwell-systems/biblioctl/internal/query"
)

type listEntry struct {
	Title     string  `json:"title"`
	Author    string  `json:"author,omitempty"`
	Genre     string  `json:"genre,omitempty"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	Available bool    `json:"available"`
	Quantity  int     `json:"quantity"`
}

func newListCmd() *cobra.Command {
	var (
		sortBy  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog, optionally sorted",
		Long: `List every book in the library.

--sort selects an ordering: rating (descending), title (A–Z,
case-insensitive), or year (newest first). Without it, books appear in
catalog order.

Examples:
  biblioctl list
  biblioctl list --sort rating
  biblioctl list --sort title --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadLibrary()
			if err != nil {
				return err
			}

			if sortBy != "" {
				strategy, err := query.ParseStrategy(sortBy)
				if err != nil {
					return err
				}
				books = query.Sort(strategy, books)
			}

			if jsonOut {
				entries := make([]listEntry, len(books))
				for i, b := range books {
					entries[i] = toEntry(b)
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(books) == 0 {
				fmt.Println("The library is empty. Add a book with 'biblioctl add'.")
				return nil
			}

			header("── Library  (%d books)", len(books))
			for _, b := range books {
				fmt.Println(bookRow(b))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by rating, title, or year")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func toEntry(b catalog.Book) listEntry {
	return listEntry{
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Year:      b.Year,
		Rating:    b.Rating,
		Available: b.Available,
		Quantity:  b.Quantity,
	}
}
