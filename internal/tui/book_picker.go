package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

// bookItem wraps a catalog entry with its index in the caller's slice.
// Titles are not unique, so the index is what the picker returns.
type bookItem struct {
	index int
	book  catalog.Book
}

func (b bookItem) FilterValue() string {
	return b.book.Title + " " + b.book.Author + " " + b.book.Genre
}

type bookDelegate struct{}

func (bookDelegate) Height() int                         { return 1 }
func (bookDelegate) Spacing() int                        { return 0 }
func (bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(bookItem)
	if !ok {
		return
	}
	b := bi.book

	avail := StyleReference.Render("ref")
	if b.Available {
		avail = StyleAvailable.Render(fmt.Sprintf("%d✓", b.Quantity))
	}
	row := fmt.Sprintf("%-32s %-18s %s %4d  %.1f  %s",
		truncate(b.Title, 32), truncate(b.Author, 18),
		StyleGenre.Render(fmt.Sprintf("%-14s", truncate(b.Genre, 14))),
		b.Year, b.Rating, avail)

	if index == m.Index() {
		fmt.Fprint(w, StyleHighlight.Render("› "+row))
	} else {
		fmt.Fprint(w, "  "+StyleNormal.Render(row))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

type pickerModel struct {
	list     list.Model
	title    string
	selected int // index into the caller's slice, -1 when canceled
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.selected = -1
			return m, tea.Quit
		case key.Matches(msg, hubKeyMap.selectItem):
			if item, ok := m.list.SelectedItem().(bookItem); ok {
				m.selected = item.index
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return "\n " + StyleHeader.Render(m.title) + "\n\n" + m.list.View()
}

// PickBook shows a filterable book list and returns the index of the
// chosen book, or ok=false when the user backed out.
func PickBook(title string, books []catalog.Book) (int, bool, error) {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookItem{index: i, book: b}
	}

	l := list.New(items, bookDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = StyleHelp

	m := pickerModel{list: l, title: title, selected: -1}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("running book picker: %w", err)
	}

	fm, ok := finalModel.(pickerModel)
	if !ok {
		return 0, false, fmt.Errorf("unexpected model type")
	}
	if fm.selected < 0 {
		return 0, false, nil
	}
	return fm.selected, true, nil
}
