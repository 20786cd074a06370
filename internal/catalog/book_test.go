package catalog_test

import (
	"testing"
	"time"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

func mustNew(t *testing.T, quantity int) catalog.Book {
	t.Helper()
	b, err := catalog.New("Dune", "Frank Herbert", "Science Fiction", 1965, 4.5, quantity)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNew_DerivesAvailability(t *testing.T) {
	b := mustNew(t, 3)
	if !b.Available {
		t.Error("Available = false with 3 copies")
	}
	b = mustNew(t, 0)
	if b.Available {
		t.Error("Available = true with 0 copies")
	}
}

func TestNew_LogsCreation(t *testing.T) {
	b := mustNew(t, 2)
	if len(b.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(b.History))
	}
	if b.History[0].Action != catalog.ActionAdded {
		t.Errorf("history action = %q, want %q", b.History[0].Action, catalog.ActionAdded)
	}
	if b.History[0].At.After(time.Now().UTC()) {
		t.Error("history timestamp is in the future")
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		year     int
		rating   float64
		quantity int
	}{
		{"empty title", "", 1965, 4.5, 1},
		{"year too early", "Dune", 1499, 4.5, 1},
		{"year in future", "Dune", time.Now().Year() + 1, 4.5, 1},
		{"rating too low", "Dune", 1965, 0.9, 1},
		{"rating too high", "Dune", 1965, 5.1, 1},
		{"negative quantity", "Dune", 1965, 4.5, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := catalog.New(c.title, "a", "g", c.year, c.rating, c.quantity); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLend_DecrementsAndLogs(t *testing.T) {
	b := mustNew(t, 1)
	if err := b.Lend(); err != nil {
		t.Fatalf("Lend: %v", err)
	}
	if b.Quantity != 0 {
		t.Errorf("Quantity = %d, want 0", b.Quantity)
	}
	if b.Available {
		t.Error("Available = true after lending the last copy")
	}
	if len(b.History) != 2 || b.History[1].Action != catalog.ActionLend {
		t.Errorf("expected a %q event appended, history = %v", catalog.ActionLend, b.History)
	}
}

func TestLend_NoCopies(t *testing.T) {
	b := mustNew(t, 0)
	if err := b.Lend(); err == nil {
		t.Error("Lend with 0 copies should fail")
	}
	if len(b.History) != 1 {
		t.Error("failed Lend must not append history")
	}
}

func TestReturn_RestoresAvailability(t *testing.T) {
	b := mustNew(t, 1)
	if err := b.Lend(); err != nil {
		t.Fatal(err)
	}
	b.Return()
	if b.Quantity != 1 || !b.Available {
		t.Errorf("after return: Quantity=%d Available=%v", b.Quantity, b.Available)
	}
	if b.History[len(b.History)-1].Action != catalog.ActionReturn {
		t.Error("Return did not log an event")
	}
}

func TestSetQuantity(t *testing.T) {
	b := mustNew(t, 5)
	if err := b.SetQuantity(0); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if b.Available {
		t.Error("Available = true after setting quantity to 0")
	}
	if err := b.SetQuantity(-1); err == nil {
		t.Error("SetQuantity(-1) should fail")
	}
}

// Every mutation appends exactly one event and never reorders earlier ones.
func TestHistory_AppendOnly(t *testing.T) {
	b := mustNew(t, 2)
	_ = b.Lend()
	b.Return()
	_ = b.SetQuantity(4)

	want := []string{catalog.ActionAdded, catalog.ActionLend, catalog.ActionReturn, catalog.ActionQuantity}
	if len(b.History) != len(want) {
		t.Fatalf("history length = %d, want %d", len(b.History), len(want))
	}
	for i, action := range want {
		if b.History[i].Action != action {
			t.Errorf("history[%d] = %q, want %q", i, b.History[i].Action, action)
		}
	}
}
