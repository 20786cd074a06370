package app

import (
	"fmt"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
	"github.com/blackwell-systems/biblioctl/internal/query"
	"github.com/blackwell-systems/biblioctl/internal/tui"
)

// runHub drives the interactive menu loop: show the hub, run the chosen
// action in the normal terminal, repeat until quit.
func runHub() error {
	for {
		books, err := loadLibrary()
		if err != nil {
			return err
		}

		available := 0
		for _, b := range books {
			if b.Available {
				available++
			}
		}

		action, err := tui.RunHub(tui.HubContext{
			BookCount:      len(books),
			AvailableCount: available,
		})
		if err != nil {
			return err
		}

		switch action {
		case "", "quit":
			return nil
		case "browse":
			if err := hubBrowse(books); err != nil {
				return err
			}
		case "sort":
			if err := hubSortedView(books); err != nil {
				return err
			}
		case "add":
			if err := hubAdd(books); err != nil {
				return err
			}
		case "lend":
			if err := hubCirculate(books, true); err != nil {
				return err
			}
		case "return":
			if err := hubCirculate(books, false); err != nil {
				return err
			}
		}
	}
}

// hubBrowse lets the user pick a book and prints its detail view.
func hubBrowse(books []catalog.Book) error {
	idx, picked, err := tui.PickBook("Browse Library", books)
	if err != nil || !picked {
		return err
	}
	fmt.Println()
	printBook(&books[idx])
	fmt.Println()
	return nil
}

// hubSortedView shows the catalog under each ordering in turn.
func hubSortedView(books []catalog.Book) error {
	for _, s := range []query.Strategy{query.ByRating, query.ByTitle, query.ByYear} {
		fmt.Println()
		header("── Sorted by %s", s.String())
		for _, b := range query.Sort(s, books) {
			fmt.Println(bookRow(b))
		}
	}
	fmt.Println()
	return nil
}

func hubAdd(books []catalog.Book) error {
	data, err := tui.RunAddForm()
	if err != nil {
		return err
	}
	if data == nil {
		return nil // canceled
	}
	book, err := catalog.New(data.Title, data.Author, data.Genre, data.Year, data.Rating, data.Quantity)
	if err != nil {
		return err
	}
	books = catalog.Append(books, book)
	if err := saveLibrary(books); err != nil {
		return err
	}
	ok("Added %q (%d copies)", book.Title, book.Quantity)
	return nil
}

func hubCirculate(books []catalog.Book, lend bool) error {
	title := "Return Book"
	if lend {
		title = "Lend Book"
	}
	idx, picked, err := tui.PickBook(title, books)
	if err != nil || !picked {
		return err
	}
	b := &books[idx]
	if lend {
		if err := b.Lend(); err != nil {
			warn("%v", err)
			return nil
		}
		ok("Lent %q — %d copies remain", b.Title, b.Quantity)
	} else {
		b.Return()
		ok("Returned %q — %d copies on shelf", b.Title, b.Quantity)
	}
	return saveLibrary(books)
}
