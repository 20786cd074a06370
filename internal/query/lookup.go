package query

import (
	"strings"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

// FindByTitle returns the first book whose title matches exactly,
// ignoring case, in the collection's current order. The pointer aliases
// the caller's slice. A miss is a normal result, not an error.
func FindByTitle(books []catalog.Book, title string) (*catalog.Book, bool) {
	for i := range books {
		if strings.EqualFold(books[i].Title, title) {
			return &books[i], true
		}
	}
	return nil, false
}
