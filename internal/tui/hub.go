package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem represents an action in the hub menu.
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item.
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext holds the library stats shown in the hub's status line.
type HubContext struct {
	BookCount      int
	AvailableCount int
}

var menuItems = []MenuItem{
	// Browse & query
	{Key: "browse", Label: "Browse Library", Description: "Scroll and inspect the catalog"},
	{Key: "sort", Label: "Sorted View", Description: "List books by rating, title, or year"},
	// Circulation
	{Key: "add", Label: "Add Book", Description: "Record a new book in the catalog"},
	{Key: "lend", Label: "Lend Book", Description: "Check a copy out"},
	{Key: "return", Label: "Return Book", Description: "Check a copy back in"},
	// Exit
	{Key: "quit", Label: "Quit", Description: "Exit biblioctl"},
}

// menuDelegate renders hub rows. Height and spacing are fixed; only
// the row rendering differs from the bubbles defaults.
type menuDelegate struct{}

func (menuDelegate) Height() int                         { return 1 }
func (menuDelegate) Spacing() int                        { return 1 }
func (menuDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}
	display := fmt.Sprintf("%-14s %s", menuItem.Label, StyleHelp.Render(menuItem.Description))
	if index == m.Index() {
		fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type hubModel struct {
	list     list.Model
	quitting bool
	action   string
	context  HubContext
	width    int
	height   int
}

type hubKeys struct {
	quit       key.Binding
	selectItem key.Binding
}

var hubKeyMap = hubKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	selectItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit
		case key.Matches(msg, hubKeyMap.selectItem):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.action = item.Key
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		const paddingH = 4*2 + 3 // outer margin plus inner padding
		const headerLines = 4
		h, v := StyleBorder.GetFrameSize()

		listWidth := msg.Width - paddingH - h
		listHeight := msg.Height - 2*2 - v - headerLines
		if listWidth < 40 {
			listWidth = 40
		}
		if listHeight < 5 {
			listHeight = 5
		}
		m.list.SetSize(listWidth, listHeight)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Padding(0, 1).
		Render("biblioctl - Library Catalog")

	var statusBar string
	if m.context.BookCount > 0 {
		statusBar = StyleHelp.Render(fmt.Sprintf("  %d books · %d available",
			m.context.BookCount, m.context.AvailableCount))
	}

	parts := []string{header}
	if statusBar != "" {
		parts = append(parts, statusBar)
	}
	parts = append(parts, m.list.View())

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)

	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(content)))
}

// RunHub launches the interactive hub menu. Returns the selected action
// key, or an error if the program could not run.
func RunHub(ctx HubContext) (string, error) {
	var items []list.Item
	for _, item := range menuItems {
		// An empty library has nothing to browse, lend, or return.
		if ctx.BookCount == 0 {
			switch item.Key {
			case "browse", "sort", "lend", "return":
				continue
			}
		}
		items = append(items, item)
	}

	l := list.New(items, menuDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{hubKeyMap.selectItem}
	}

	m := hubModel{list: l, context: ctx}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	return fm.action, nil
}
