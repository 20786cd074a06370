package app

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
	"github.com/blackwell-systems/biblioctl/internal/query"
)

// loadLibrary reads the configured catalog file. A missing file is an
// empty library.
func loadLibrary() ([]catalog.Book, error) {
	books, err := catalog.Load(cfg.Library.Path)
	if err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	return books, nil
}

// saveLibrary persists the catalog back to the configured file.
func saveLibrary(books []catalog.Book) error {
	if err := catalog.Save(cfg.Library.Path, books); err != nil {
		return fmt.Errorf("saving library: %w", err)
	}
	return nil
}

// mustFind locates a book by title or returns a user-facing error.
// The pointer aliases the slice, so mutations stick.
func mustFind(books []catalog.Book, title string) (*catalog.Book, error) {
	b, found := query.FindByTitle(books, title)
	if !found {
		return nil, fmt.Errorf("no book titled %q in the library", title)
	}
	return b, nil
}

// bookRow formats one catalog line for list output.
func bookRow(b catalog.Book) string {
	avail := color.RedString("reference")
	if b.Available {
		avail = color.GreenString("%d on shelf", b.Quantity)
	}
	return fmt.Sprintf("  %-34s  %-20s  %s  %4d  %.1f  %s",
		clip(b.Title, 34), clip(b.Author, 20),
		color.CyanString("%-16s", clip(b.Genre, 16)),
		b.Year, b.Rating, avail)
}

// clip shortens a string to n runes with an ellipsis.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// printBook shows the full detail view for one record.
func printBook(b *catalog.Book) {
	header("Book: %s", b.Title)
	if b.Author != "" {
		printField("author", b.Author)
	}
	if b.Genre != "" {
		printField("genre", b.Genre)
	}
	printField("year", fmt.Sprintf("%d", b.Year))
	printField("rating", fmt.Sprintf("%.1f", b.Rating))
	printField("quantity", fmt.Sprintf("%d", b.Quantity))
	status := color.RedString("reference only")
	if b.Available {
		status = color.GreenString("available")
	}
	printField("status", status)
	if query.StudentFriendly(*b) {
		printField("student", color.GreenString("student-friendly"))
	}
}
