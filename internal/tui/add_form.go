package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/biblioctl/internal/catalog"
)

// AddFormData holds the book details collected from the user.
type AddFormData struct {
	Title    string
	Author   string
	Genre    string
	Year     int
	Rating   float64
	Quantity int
}

const (
	addFieldTitle = iota
	addFieldAuthor
	addFieldGenre
	addFieldYear
	addFieldRating
	addFieldQuantity
	addFieldCount
)

type addFormModel struct {
	inputs   []textinput.Model
	focused  int
	result   *AddFormData
	err      error
	canceled bool
}

func newAddForm() addFormModel {
	m := addFormModel{inputs: make([]textinput.Model, addFieldCount)}

	const fieldWidth = 42

	mk := func(placeholder string, width, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = width
		in.Prompt = "│ "
		return in
	}

	m.inputs[addFieldTitle] = mk("Book title", fieldWidth, 200)
	m.inputs[addFieldTitle].Focus()
	m.inputs[addFieldAuthor] = mk("Author name", fieldWidth, 100)
	m.inputs[addFieldGenre] = mk("Genre", fieldWidth, 60)
	m.inputs[addFieldYear] = mk("1965", 8, 4)
	m.inputs[addFieldRating] = mk("4.6", 8, 4)
	m.inputs[addFieldQuantity] = mk("1", 8, 4)

	return m
}

func (m addFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// parse validates the form fields against the catalog bounds.
func (m *addFormModel) parse() (*AddFormData, error) {
	title := m.inputs[addFieldTitle].Value()
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	year, err := strconv.Atoi(m.inputs[addFieldYear].Value())
	if err != nil {
		return nil, fmt.Errorf("invalid year")
	}
	rating, err := strconv.ParseFloat(m.inputs[addFieldRating].Value(), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rating (use a decimal like 4.6)")
	}
	quantity := 0
	if q := m.inputs[addFieldQuantity].Value(); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity")
		}
	}
	// Run the real validation once so bounds live in one place.
	if _, err := catalog.New(title, m.inputs[addFieldAuthor].Value(),
		m.inputs[addFieldGenre].Value(), year, rating, quantity); err != nil {
		return nil, err
	}
	return &AddFormData{
		Title:    title,
		Author:   m.inputs[addFieldAuthor].Value(),
		Genre:    m.inputs[addFieldGenre].Value(),
		Year:     year,
		Rating:   rating,
		Quantity: quantity,
	}, nil
}

func (m addFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			if m.focused < addFieldCount-1 {
				return m.focusField(m.focused + 1)
			}
			result, err := m.parse()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.result = result
			return m, tea.Quit

		case "tab", "down":
			return m.focusField((m.focused + 1) % addFieldCount)

		case "shift+tab", "up":
			return m.focusField((m.focused + addFieldCount - 1) % addFieldCount)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m addFormModel) focusField(idx int) (tea.Model, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.err = nil
	return m, m.inputs[m.focused].Focus()
}

var addFormLabels = [addFieldCount]string{
	"Title", "Author", "Genre", "Year", "Rating (1.0–5.0)", "Copies",
}

func (m addFormModel) View() string {
	s := "\n " + StyleHeader.Render("Add Book") + "\n\n"
	for i, in := range m.inputs {
		label := addFormLabels[i]
		if i == m.focused {
			label = StyleHighlight.Render(label)
		} else {
			label = StyleHelp.Render(label)
		}
		s += fmt.Sprintf(" %s\n %s\n", label, in.View())
	}
	if m.err != nil {
		s += "\n " + lipgloss.NewStyle().Foreground(ColorRed).Render(m.err.Error()) + "\n"
	}
	s += "\n " + StyleHelp.Render("enter: next/submit · tab: move · esc: cancel") + "\n"
	return s
}

// RunAddForm collects a new book's details interactively. Returns nil
// data when the user cancels.
func RunAddForm() (*AddFormData, error) {
	p := tea.NewProgram(newAddForm())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running add form: %w", err)
	}
	fm, ok := finalModel.(addFormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled {
		return nil, nil
	}
	return fm.result, nil
}
