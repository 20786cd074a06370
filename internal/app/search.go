package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/biblioctl/internal/query"
)

func newSearchCmd() *cobra.Command {
	var (
		rating  float64
		minYear int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find all books with an exact rating and a minimum year",
		Long: `Find every book whose rating matches exactly and whose publication
year is at least the given minimum. The rating must match to the
decimal — 4.5 never matches 4.4 or 4.6.

Examples:
  biblioctl search --rating 4.5 --min-year 2005
  biblioctl search --rating 5.0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rating") {
				return fmt.Errorf("--rating is required")
			}

			books, err := loadLibrary()
			if err != nil {
				return err
			}

			matches := query.SearchRatingYear(books, rating, minYear)

			if jsonOut {
				entries := make([]listEntry, len(matches))
				for i, b := range matches {
					entries[i] = toEntry(b)
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(matches) == 0 {
				fmt.Printf("No books rated %.1f from %d or later.\n", rating, minYear)
				return nil
			}

			header("── Rated %.1f, published %d or later  (%d matches)", rating, minYear, len(matches))
			for _, b := range matches {
				fmt.Println(bookRow(b))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&rating, "rating", 0, "Exact rating to match (required)")
	cmd.Flags().IntVar(&minYear, "min-year", 0, "Earliest acceptable publication year")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
