// Package query is the read-only query engine over a book collection.
// Every operation takes the caller's []catalog.Book as input and returns
// a new slice — nothing here mutates a book, touches its history, or
// performs any I/O.
package query

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

// Strategy selects one of the hand-rolled sort algorithms.
type Strategy int

const (
	// ByRating sorts descending by rating using a bubble sort. It is the
	// deliberately slow O(n²) baseline for the bench command.
	ByRating Strategy = iota
	// ByTitle sorts ascending by case-folded title using a merge sort.
	ByTitle
	// ByYear sorts descending by year using a merge sort.
	ByYear
)

// ParseStrategy maps a CLI flag value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "rating":
		return ByRating, nil
	case "title":
		return ByTitle, nil
	case "year":
		return ByYear, nil
	}
	return 0, fmt.Errorf("unknown sort %q (want rating, title, or year)", s)
}

func (s Strategy) String() string {
	switch s {
	case ByRating:
		return "rating"
	case ByTitle:
		return "title"
	case ByYear:
		return "year"
	}
	return "unknown"
}

// Sort returns a new slice holding the same books in the strategy's
// order. The input is never modified. All three strategies are stable:
// books with equal keys keep their relative input order.
func Sort(s Strategy, books []catalog.Book) []catalog.Book {
	out := make([]catalog.Book, len(books))
	copy(out, books)
	switch s {
	case ByRating:
		bubbleByRating(out)
	case ByTitle:
		mergeSort(out, titleBefore)
	case ByYear:
		mergeSort(out, yearBefore)
	}
	return out
}

// bubbleByRating sorts descending by rating in place. Adjacent entries
// swap only on a strict ordering violation, which keeps equal ratings
// in input order.
func bubbleByRating(books []catalog.Book) {
	for i := 0; i < len(books); i++ {
		swapped := false
		for j := 0; j < len(books)-i-1; j++ {
			if books[j].Rating < books[j+1].Rating {
				books[j], books[j+1] = books[j+1], books[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// titleBefore reports whether a sorts no later than b by case-folded
// title. Returning true on equality gives the merge left-run precedence.
func titleBefore(a, b catalog.Book) bool {
	return strings.ToLower(a.Title) <= strings.ToLower(b.Title)
}

// yearBefore is the descending-year merge ordering, left run first on
// equal years.
func yearBefore(a, b catalog.Book) bool {
	return a.Year >= b.Year
}

// mergeSort sorts in place via top-down merge sort. before(a, b) must
// return true when a may precede b, including on equal keys — that tie
// rule is what makes the sort stable. Recursion depth is logarithmic.
func mergeSort(books []catalog.Book, before func(a, b catalog.Book) bool) {
	if len(books) < 2 {
		return
	}
	mid := len(books) / 2
	left := make([]catalog.Book, mid)
	right := make([]catalog.Book, len(books)-mid)
	copy(left, books[:mid])
	copy(right, books[mid:])

	mergeSort(left, before)
	mergeSort(right, before)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if before(left[i], right[j]) {
			books[k] = left[i]
			i++
		} else {
			books[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		books[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		books[k] = right[j]
		j++
		k++
	}
}
