package query

import (
	"math"
	"sort"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

// tenths converts a rating to fixed-point tenths. Ratings are entered
// with one decimal digit, so comparing tenths makes equality exact
// without an epsilon.
func tenths(rating float64) int {
	return int(math.Round(rating * 10))
}

// SearchRatingYear returns every book whose rating equals rating exactly
// and whose year is at least minYear.
//
// The books are copied and pre-sorted ascending by rating (the stdlib
// sort is fine for this preprocessing step), then a binary search
// narrows to any index inside the run of books carrying the target
// rating. The run is expanded linearly in both directions, so all
// duplicates are found in O(log n + k) where k is the run length.
// No exact rating match means an empty result — never the nearest one.
func SearchRatingYear(books []catalog.Book, rating float64, minYear int) []catalog.Book {
	if len(books) == 0 {
		return nil
	}

	sorted := make([]catalog.Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating < sorted[j].Rating
	})

	target := tenths(rating)

	lo, hi := 0, len(sorted)-1
	hit := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch r := tenths(sorted[mid].Rating); {
		case r == target:
			hit = mid
			lo = hi + 1 // stop: any index in the run will do
		case r < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	if hit == -1 {
		return nil
	}

	// Walk to the start of the duplicate run, then collect the whole run,
	// keeping only books new enough.
	start := hit
	for start > 0 && tenths(sorted[start-1].Rating) == target {
		start--
	}
	var out []catalog.Book
	for i := start; i < len(sorted) && tenths(sorted[i].Rating) == target; i++ {
		if sorted[i].Year >= minYear {
			out = append(out, sorted[i])
		}
	}
	return out
}
