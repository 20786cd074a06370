package query_test

import (
	"testing"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
	"github.com/blackwell-systems/biblioctl/internal/query"
)

func referenceBook() catalog.Book {
	return catalog.Book{
		Title: "Cosmos", Genre: "Science", Year: 2005, Rating: 4.2,
		Available: false, Quantity: 0,
	}
}

func borrowableBook() catalog.Book {
	return catalog.Book{
		Title: "Sapiens", Genre: "History", Year: 2011, Rating: 4.4,
		Available: true, Quantity: 2,
	}
}

func TestFilter_ReferenceClassification(t *testing.T) {
	f := query.Filter{Genre: "Science", StudentFriendly: true, Access: query.AccessReference}
	got := f.Apply([]catalog.Book{referenceBook()})
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].Borrowable {
		t.Error("Borrowable = true for a zero-quantity book")
	}
	if !got[0].Reference {
		t.Error("Reference = false for a zero-quantity book")
	}
}

func TestFilter_BorrowModeExcludesReferenceOnly(t *testing.T) {
	f := query.Filter{Genre: "Science", StudentFriendly: true, Access: query.AccessBorrow}
	if got := f.Apply([]catalog.Book{referenceBook()}); len(got) != 0 {
		t.Errorf("borrow mode matched a reference-only book: %v", got)
	}
}

// A non-matching genre excludes the book no matter what else is asked.
func TestFilter_GenreGate(t *testing.T) {
	book := borrowableBook() // genre History
	for _, access := range []query.AccessMode{query.AccessAny, query.AccessBorrow, query.AccessReference} {
		for _, student := range []bool{true, false} {
			f := query.Filter{Genre: "Science", StudentFriendly: student, Access: access}
			if got := f.Apply([]catalog.Book{book}); len(got) != 0 {
				t.Errorf("genre gate leaked (access=%v student=%v)", access, student)
			}
		}
	}
}

func TestFilter_GenreCaseInsensitive(t *testing.T) {
	f := query.Filter{Genre: "science"}
	if got := f.Apply([]catalog.Book{referenceBook()}); len(got) != 1 {
		t.Error("genre comparison should ignore case")
	}
}

func TestFilter_StudentFriendly(t *testing.T) {
	old := catalog.Book{Title: "Relativity", Genre: "Science", Year: 1916, Rating: 4.8, Available: true, Quantity: 1}
	weak := catalog.Book{Title: "Pop Sci", Genre: "Science", Year: 2019, Rating: 3.9, Available: true, Quantity: 1}
	good := catalog.Book{Title: "Cosmos 2", Genre: "Science", Year: 2001, Rating: 4.0, Available: true, Quantity: 1}

	f := query.Filter{Genre: "Science", StudentFriendly: true}
	got := f.Apply([]catalog.Book{old, weak, good})
	if len(got) != 1 || got[0].Book.Title != "Cosmos 2" {
		t.Errorf("student filter kept %v, want only Cosmos 2", got)
	}

	// Without the requirement all three pass.
	f.StudentFriendly = false
	if got := f.Apply([]catalog.Book{old, weak, good}); len(got) != 3 {
		t.Errorf("without student requirement got %d, want 3", len(got))
	}
}

func TestFilter_AnyAccessKeepsBoth(t *testing.T) {
	f := query.Filter{Genre: "Science", Access: query.AccessAny}
	ref := referenceBook()
	bor := catalog.Book{Title: "Astro", Genre: "Science", Year: 2018, Rating: 4.1, Available: true, Quantity: 1}
	got := f.Apply([]catalog.Book{ref, bor})
	if len(got) != 2 {
		t.Fatalf("any mode got %d, want 2", len(got))
	}
	// Input order preserved.
	if got[0].Book.Title != "Cosmos" || got[1].Book.Title != "Astro" {
		t.Error("filter reordered its matches")
	}
	if !got[1].Borrowable || got[1].Reference {
		t.Error("borrowable book misclassified")
	}
}

func TestFilter_Empty(t *testing.T) {
	f := query.Filter{Genre: "Science"}
	if got := f.Apply(nil); len(got) != 0 {
		t.Errorf("filter over empty collection returned %d matches", len(got))
	}
}

func TestFilter_DoesNotMutate(t *testing.T) {
	books := []catalog.Book{referenceBook()}
	f := query.Filter{Genre: "Science", Access: query.AccessReference}
	f.Apply(books)
	if books[0].Quantity != 0 || books[0].Available {
		t.Error("filter mutated a book")
	}
}

func TestParseAccessMode(t *testing.T) {
	for _, c := range []struct {
		in   string
		want query.AccessMode
	}{
		{"", query.AccessAny},
		{"any", query.AccessAny},
		{"Borrow", query.AccessBorrow},
		{"REFERENCE", query.AccessReference},
	} {
		got, err := query.ParseAccessMode(c.in)
		if err != nil {
			t.Errorf("ParseAccessMode(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseAccessMode(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := query.ParseAccessMode("loan"); err == nil {
		t.Error("expected error for unknown access mode")
	}
}
