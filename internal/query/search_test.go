package query_test

import (
	"testing"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
	"github.com/blackwell-systems/biblioctl/internal/query"
)

// Ratings [3.0 4.5 4.5 4.5 5.0], years [2020 1999 2010 2021 2015]:
// a three-book duplicate run in the middle of the rating range.
func searchShelf() []catalog.Book {
	return []catalog.Book{
		{Title: "A", Year: 2020, Rating: 3.0},
		{Title: "B", Year: 1999, Rating: 4.5},
		{Title: "C", Year: 2010, Rating: 4.5},
		{Title: "D", Year: 2021, Rating: 4.5},
		{Title: "E", Year: 2015, Rating: 5.0},
	}
}

func titles(books []catalog.Book) map[string]bool {
	out := map[string]bool{}
	for _, b := range books {
		out[b.Title] = true
	}
	return out
}

func TestSearchRatingYear_DuplicateRun(t *testing.T) {
	got := query.SearchRatingYear(searchShelf(), 4.5, 2005)
	if len(got) != 2 {
		t.Fatalf("got %d books, want 2", len(got))
	}
	set := titles(got)
	if !set["C"] || !set["D"] {
		t.Errorf("matches = %v, want C and D", set)
	}
}

func TestSearchRatingYear_YearCutsEverything(t *testing.T) {
	if got := query.SearchRatingYear(searchShelf(), 4.5, 2022); len(got) != 0 {
		t.Errorf("expected no matches for min year 2022, got %d", len(got))
	}
}

func TestSearchRatingYear_NoExactRating(t *testing.T) {
	// 4.4 must not fall back to the nearest rating.
	if got := query.SearchRatingYear(searchShelf(), 4.4, 1900); len(got) != 0 {
		t.Errorf("expected no matches for rating 4.4, got %d", len(got))
	}
}

func TestSearchRatingYear_Empty(t *testing.T) {
	if got := query.SearchRatingYear(nil, 4.5, 2000); got != nil {
		t.Errorf("expected nil for empty collection, got %v", got)
	}
}

func TestSearchRatingYear_SingleMatch(t *testing.T) {
	got := query.SearchRatingYear(searchShelf(), 5.0, 2015)
	if len(got) != 1 || got[0].Title != "E" {
		t.Errorf("got %v, want exactly E", got)
	}
}

func TestSearchRatingYear_RunAtBothEnds(t *testing.T) {
	// Whole collection shares one rating: the run spans the array.
	books := []catalog.Book{
		{Title: "A", Year: 2001, Rating: 4.0},
		{Title: "B", Year: 1990, Rating: 4.0},
		{Title: "C", Year: 2003, Rating: 4.0},
		{Title: "D", Year: 2002, Rating: 4.0},
	}
	got := query.SearchRatingYear(books, 4.0, 2000)
	if len(got) != 3 {
		t.Fatalf("got %d books, want 3", len(got))
	}
	set := titles(got)
	if set["B"] {
		t.Error("book from 1990 should be excluded by the year bound")
	}
}

// Exactness survives ratings that are not representable in binary,
// because comparison happens in fixed-point tenths.
func TestSearchRatingYear_TenthsEquality(t *testing.T) {
	books := []catalog.Book{
		{Title: "X", Year: 2010, Rating: 0.1 + 0.2 + 4.0}, // 4.3000000000000007
	}
	got := query.SearchRatingYear(books, 4.3, 2000)
	if len(got) != 1 {
		t.Errorf("fixed-point comparison missed 4.3, got %d matches", len(got))
	}
}

func TestSearchRatingYear_DoesNotMutateInput(t *testing.T) {
	books := searchShelf()
	query.SearchRatingYear(books, 4.5, 2005)
	if books[0].Title != "A" || books[4].Title != "E" {
		t.Error("SearchRatingYear reordered the caller's slice")
	}
}
