// Package browse implements the interactive template picker.
//
// It follows the bubbletea Elm architecture: the Model holds the list
// state, Update reacts to key presses and refresh signals, and View
// renders the list with a status line. Selecting a template loads it
// into the workspace; the listing refreshes on demand ('r') and
// automatically when the templates directory changes on disk.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kirolabs/steering/internal/template"
)

// Messages consumed by Update.
type (
	refreshMsg struct{}
	loadedMsg  struct {
		result *template.LoadResult
		err    error
	}
)

// listItem adapts a template.Item to the bubbles list.Item interface.
type listItem struct {
	item template.Item
}

func (i listItem) Title() string { return i.item.Label }

func (i listItem) Description() string {
	switch i.item.Kind {
	case template.KindTemplate:
		return i.item.Path
	case template.KindSetup:
		return "configuration needed"
	case template.KindError:
		return "discovery failed"
	default:
		return ""
	}
}

func (i listItem) FilterValue() string { return i.item.Label }

var (
	statusOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// Model is the browse application state.
type Model struct {
	list    list.Model
	lister  *template.Lister
	loader  *template.Loader
	watcher *Watcher
	status  string
	failed  bool
}

// New creates a browse model. watcher may be nil when the templates
// directory cannot be watched (unset or missing path); refresh then
// stays manual.
func New(lister *template.Lister, loader *template.Loader, watcher *Watcher) Model {
	items := toListItems(lister.List())

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Steering Templates"
	l.SetShowStatusBar(false)

	return Model{
		list:    l,
		lister:  lister,
		loader:  loader,
		watcher: watcher,
	}
}

func toListItems(items []template.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, item := range items {
		out = append(out, listItem{item: item})
	}
	return out
}

// waitForChange blocks on the watcher channel and emits a refreshMsg.
func waitForChange(w *Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return refreshMsg{}
	}
}

// loadTemplate performs the load off the update loop.
func loadTemplate(loader *template.Loader, path string) tea.Cmd {
	return func() tea.Msg {
		result, err := loader.Load(path)
		return loadedMsg{result: result, err: err}
	}
}

// Init starts listening for filesystem changes when a watcher is attached.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForChange(m.watcher)
	}
	return nil
}

// Update handles key presses, load completions, and refresh signals.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case refreshMsg:
		m.refresh()
		if m.watcher != nil {
			return m, waitForChange(m.watcher)
		}
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.failed = true
		} else {
			m.status = fmt.Sprintf("Loaded %s into %s", msg.result.Template, msg.result.Dest)
			m.failed = false
		}
		return m, nil

	case tea.KeyMsg:
		// Don't intercept keys while the list filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.refresh()
			return m, nil
		case "enter":
			return m, m.selectCurrent()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refresh re-runs discovery and replaces the list items.
func (m *Model) refresh() {
	m.list.SetItems(toListItems(m.lister.List()))
}

// selectCurrent acts on the highlighted item: templates are loaded,
// placeholders only update the status line.
func (m *Model) selectCurrent() tea.Cmd {
	selected, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}

	switch selected.item.Kind {
	case template.KindTemplate:
		return loadTemplate(m.loader, selected.item.Path)
	case template.KindSetup:
		m.status = "Run 'steering path set <dir>' to configure templates"
		m.failed = false
	default:
		m.status = selected.item.Label
		m.failed = false
	}
	return nil
}

// View renders the list with a status line and key help.
func (m Model) View() string {
	view := m.list.View()

	if m.status != "" {
		style := statusOKStyle
		if m.failed {
			style = statusErrStyle
		}
		view += "\n" + style.Render(m.status)
	}

	view += "\n" + helpStyle.Render("enter: load  r: refresh  q: quit")
	return view
}

// Run starts the interactive picker and blocks until the user quits.
func Run(lister *template.Lister, loader *template.Loader, watcher *Watcher) error {
	program := tea.NewProgram(New(lister, loader, watcher), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
