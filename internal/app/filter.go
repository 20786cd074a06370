package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/biblioctl/internal/query"
)

type filterResult struct {
	listEntry
	Borrowable bool `json:"borrowable"`
	Reference  bool `json:"reference"`
}

func newFilterCmd() *cobra.Command {
	var (
		genre   string
		student bool
		access  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter books by genre, student-friendliness, and access",
		Long: `Filter the catalog by genre (exact match, case-insensitive) and
classify each match as borrowable or reference-only.

--student keeps only student-friendly books (rating ≥ 4.0 and
published 2000 or later). --access narrows to books that can be
borrowed, or to reference-only books.

Examples:
  biblioctl filter --genre "Science"
  biblioctl filter --genre "Science" --student --access reference`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if genre == "" {
				return fmt.Errorf("--genre is required")
			}
			if access == "" {
				access = cfg.Defaults.Access
			}
			mode, err := query.ParseAccessMode(access)
			if err != nil {
				return err
			}

			books, err := loadLibrary()
			if err != nil {
				return err
			}

			f := query.Filter{Genre: genre, StudentFriendly: student, Access: mode}
			matches := f.Apply(books)

			if jsonOut {
				results := make([]filterResult, len(matches))
				for i, m := range matches {
					results[i] = filterResult{
						listEntry:  toEntry(m.Book),
						Borrowable: m.Borrowable,
						Reference:  m.Reference,
					}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(matches) == 0 {
				fmt.Printf("No %s books match.\n", genre)
				return nil
			}

			header("── %s  (%d matches, access: %s)", genre, len(matches), mode)
			for _, m := range matches {
				tag := color.RedString("[reference]")
				if m.Borrowable {
					tag = color.GreenString("[borrowable]")
				}
				fmt.Printf("%s  %s\n", bookRow(m.Book), tag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Genre to match (required)")
	cmd.Flags().BoolVar(&student, "student", false, "Only student-friendly books")
	cmd.Flags().StringVar(&access, "access", "", "Access mode: borrow, reference, or any")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
