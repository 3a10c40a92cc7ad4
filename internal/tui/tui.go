package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskline/internal/task"
	"taskline/internal/ui"
)

// listItem adapts a task to bubbles/list.Item. The id travels with the
// row so actions always hit the right task even while filtering.
type listItem struct {
	ID   string
	Text string
	Done bool
}

func (i listItem) line() string {
	box := ui.BoxUnchecked
	if i.Done {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Text)
}

func (i listItem) Title() string       { return i.line() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

type modelTUI struct {
	store *task.Store
	list  list.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string
}

// Custom delegate to control how rows render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	boxStyled := ui.MutedStyle.Render(ui.BoxUnchecked)
	textStyled := it.Text
	if it.Done {
		boxStyled = ui.SuccessStyle.Render(ui.BoxChecked)
		textStyled = ui.DoneStyle.Render(it.Text)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the interactive list. Every action goes straight through
// the store, so each toggle/delete/add is persisted as it happens and
// quitting needs no save step.
func Run(store *task.Store) error {
	l := list.New(storeItems(store), itemDelegate{}, 0, 0)
	l.Title = headerTitle(store)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	clearBind := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done"))
	extra := func() []key.Binding { return []key.Binding{addBind, toggleBind, deleteBind, clearBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := modelTUI{
		store: store,
		list:  l,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func storeItems(store *task.Store) []list.Item {
	tasks := store.Tasks()
	li := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		li = append(li, listItem{ID: t.ID, Text: t.Text, Done: t.Completed})
	}
	return li
}

func headerTitle(store *task.Store) string {
	c := store.Counts()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), c.Completed,
		ui.PendingStyle.Render("•"), c.Pending,
		ui.AccentStyle.Render("Total"), c.Total,
	)
}

// refresh rebuilds the rows and header from the store after a
// mutation, keeping the cursor near where it was.
func (m *modelTUI) refresh() {
	idx := m.list.Index()
	m.list.SetItems(storeItems(m.store))
	if n := len(m.list.Items()); idx >= n {
		idx = n - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = headerTitle(m.store)
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		height := ws.Height - 2
		if m.adding {
			height = ws.Height - 6
		}
		m.list.SetSize(ws.Width-2, height)
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				if _, ok := m.store.Add(m.ti.Value()); !ok {
					m.addErr = "Task text cannot be empty"
					return m, nil
				}
				m.refresh()
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list handle keys while the filter input is open.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if li, ok := m.selected(); ok {
				m.store.Toggle(li.ID)
				m.refresh()
			}
			return m, nil
		case "d":
			if li, ok := m.selected(); ok {
				m.store.Delete(li.ID)
				m.refresh()
			}
			return m, nil
		case "c":
			m.store.ClearCompleted()
			m.refresh()
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m modelTUI) View() string {
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		title := "Add task"
		if m.addErr != "" {
			title += " — " + ui.ErrorStyle.Render(m.addErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
