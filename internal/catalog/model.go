package catalog

import "time"

// Book is one entry in the library.yml catalog.
//
// Title is the lookup key but is NOT unique — two editions of the same
// title may coexist, and every query operation tolerates that.
type Book struct {
	Title     string  `yaml:"title"`
	Author    string  `yaml:"author,omitempty"`
	Genre     string  `yaml:"genre,omitempty"`
	Year      int     `yaml:"year,omitempty"`
	Rating    float64 `yaml:"rating,omitempty"`
	Available bool    `yaml:"available"`
	Quantity  int     `yaml:"quantity"`
	History   []Event `yaml:"history,omitempty"`
}

// Event is one entry in a book's append-only audit log.
type Event struct {
	At     time.Time `yaml:"at"`
	Action string    `yaml:"action"`
	Note   string    `yaml:"note,omitempty"`
}

// Action tags recorded in a book's history.
const (
	ActionAdded    = "added"
	ActionLend     = "lend"
	ActionReturn   = "return"
	ActionQuantity = "quantity"
)
