package catalog

import (
	"fmt"
	"time"
)

// MinYear is the earliest publication year the catalog accepts.
const MinYear = 1500

// Rating bounds. Ratings are entered with one decimal digit.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// New creates a validated book with its creation event already logged.
// Availability is derived from quantity, never set directly.
func New(title, author, genre string, year int, rating float64, quantity int) (Book, error) {
	if title == "" {
		return Book{}, fmt.Errorf("title must not be empty")
	}
	if year < MinYear || year > time.Now().Year() {
		return Book{}, fmt.Errorf("year %d out of range [%d, %d]", year, MinYear, time.Now().Year())
	}
	if rating < MinRating || rating > MaxRating {
		return Book{}, fmt.Errorf("rating %.1f out of range [%.1f, %.1f]", rating, MinRating, MaxRating)
	}
	if quantity < 0 {
		return Book{}, fmt.Errorf("quantity must not be negative")
	}

	b := Book{
		Title:    title,
		Author:   author,
		Genre:    genre,
		Year:     year,
		Rating:   rating,
		Quantity: quantity,
	}
	b.log(ActionAdded, fmt.Sprintf("added with %d copies", quantity))
	b.Available = b.Quantity > 0
	return b, nil
}

// Lend checks out one copy. Fails when no copies are on the shelf.
func (b *Book) Lend() error {
	if b.Quantity == 0 {
		return fmt.Errorf("no copies of %q available", b.Title)
	}
	b.Quantity--
	b.log(ActionLend, fmt.Sprintf("lent, %d copies remain", b.Quantity))
	b.Available = b.Quantity > 0
	return nil
}

// Return checks one copy back in.
func (b *Book) Return() {
	b.Quantity++
	b.log(ActionReturn, fmt.Sprintf("returned, %d copies on shelf", b.Quantity))
	b.Available = b.Quantity > 0
}

// SetQuantity replaces the copy count, e.g. after a stocktake.
func (b *Book) SetQuantity(n int) error {
	if n < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	b.Quantity = n
	b.log(ActionQuantity, fmt.Sprintf("quantity set to %d", n))
	b.Available = b.Quantity > 0
	return nil
}

// log appends one event to the book's history. The log is append-only:
// nothing in this package reorders or truncates it.
func (b *Book) log(action, note string) {
	b.History = append(b.History, Event{
		At:     time.Now().UTC(),
		Action: action,
		Note:   note,
	})
}
