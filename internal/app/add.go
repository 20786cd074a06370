package app

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
	"github.com/blackwell-systems/biblioctl/internal/util"
)

func newAddCmd() *cobra.Command {
	var (
		title    string
		author   string
		genre    string
		year     int
		rating   float64
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new book in the catalog",
		Long: `Record a new book. Missing details are prompted for interactively
when running in a terminal; in scripts, pass everything as flags.

Examples:
  biblioctl add --title "Dune" --author "Frank Herbert" --genre "Science Fiction" \
      --year 1965 --rating 4.5 --quantity 3
  biblioctl add    # interactive prompts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := util.IsTTY() && !flagNoInteractive

			if title == "" || (interactive && !cmd.Flags().Changed("year")) {
				p := util.NewPrompter(os.Stdin, os.Stdout)
				var err error
				if title == "" {
					if title, err = p.AskString("Title"); err != nil {
						return err
					}
				}
				if author == "" {
					if author, err = p.AskString("Author's name"); err != nil {
						return err
					}
				}
				if genre == "" {
					if genre, err = p.AskString("Genre"); err != nil {
						return err
					}
				}
				if !cmd.Flags().Changed("year") {
					if year, err = p.AskInt("Year of publication", catalog.MinYear, time.Now().Year()); err != nil {
						return err
					}
				}
				if !cmd.Flags().Changed("rating") {
					if rating, err = p.AskFloat("Rating (between 1 and 5, e.g. 4.6)", catalog.MinRating, catalog.MaxRating); err != nil {
						return err
					}
				}
				if !cmd.Flags().Changed("quantity") {
					available, err := p.AskYesNo("Is any physical copy available in the library?")
					if err != nil {
						return err
					}
					if available {
						if quantity, err = p.AskInt("How many copies are available", 1, 10000); err != nil {
							return err
						}
					}
				}
			}

			book, err := catalog.New(title, author, genre, year, rating, quantity)
			if err != nil {
				return err
			}

			books, err := loadLibrary()
			if err != nil {
				return err
			}
			books = catalog.Append(books, book)
			if err := saveLibrary(books); err != nil {
				return err
			}

			ok("Added %q (%d copies)", book.Title, book.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author name")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().IntVar(&year, "year", 0, "Year of publication")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating between 1.0 and 5.0")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Number of physical copies")

	return cmd
}
