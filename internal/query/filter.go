package query

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

// AccessMode narrows a filter to how a matching book may be used.
type AccessMode int

const (
	// AccessAny accepts borrowable and reference-only books alike.
	AccessAny AccessMode = iota
	// AccessBorrow keeps only books with copies that can leave the library.
	AccessBorrow
	// AccessReference keeps only books with no copies to lend.
	AccessReference
)

// ParseAccessMode maps a CLI flag value to an AccessMode.
func ParseAccessMode(s string) (AccessMode, error) {
	switch strings.ToLower(s) {
	case "", "any":
		return AccessAny, nil
	case "borrow":
		return AccessBorrow, nil
	case "reference":
		return AccessReference, nil
	}
	return 0, fmt.Errorf("unknown access mode %q (want borrow, reference, or any)", s)
}

func (m AccessMode) String() string {
	switch m {
	case AccessBorrow:
		return "borrow"
	case AccessReference:
		return "reference"
	}
	return "any"
}

// Filter is the multi-predicate book filter. Genre is mandatory and
// gates everything else; the remaining criteria tighten the match.
type Filter struct {
	Genre           string
	StudentFriendly bool // require rating ≥ 4.0 and year ≥ 2000
	Access          AccessMode
}

// Match pairs a passing book with its circulation classification.
type Match struct {
	Book       catalog.Book
	Borrowable bool
	Reference  bool
}

// Apply evaluates every book against the filter and returns matches in
// input order. Pure: no book is modified.
func (f Filter) Apply(books []catalog.Book) []Match {
	var out []Match
	for _, b := range books {
		if !strings.EqualFold(f.Genre, b.Genre) {
			continue
		}
		if f.StudentFriendly && !StudentFriendly(b) {
			continue
		}
		borrowable := b.Available && b.Quantity > 0
		reference := !borrowable && b.Quantity == 0
		switch f.Access {
		case AccessBorrow:
			if !borrowable {
				continue
			}
		case AccessReference:
			if !reference {
				continue
			}
		}
		out = append(out, Match{Book: b, Borrowable: borrowable, Reference: reference})
	}
	return out
}

// StudentFriendly reports whether a book is well rated (≥ 4.0) and
// recent (published 2000 or later).
func StudentFriendly(b catalog.Book) bool {
	return b.Rating >= 4.0 && b.Year >= 2000
}
