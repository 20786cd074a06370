package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Marshal encodes a book list to YAML bytes.
func Marshal(books []Book) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("encoding library: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the book list to a file on disk, creating the parent
// directory if needed.
func Save(path string, books []Book) error {
	data, err := Marshal(books)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Append adds a book to the list. Titles are not unique, so duplicates
// are allowed — a second copy of "Dune" is a second entry.
func Append(books []Book, b Book) []Book {
	return append(books, b)
}

// Remove deletes the first book whose title matches (case-insensitive).
// Returns the updated slice and whether a book was actually removed.
func Remove(books []Book, title string) ([]Book, bool) {
	for i, b := range books {
		if strings.EqualFold(b.Title, title) {
			return append(books[:i], books[i+1:]...), true
		}
	}
	return books, false
}
