// Package tui is a full-screen front end over a TaskStore.
package tui

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/ui"
)

// view selects which slice of the store the list shows.
type view int

const (
	viewAll view = iota
	viewPending
	viewCompleted
)

func (v view) String() string {
	switch v {
	case viewPending:
		return "Pending"
	case viewCompleted:
		return "Completed"
	default:
		return "All"
	}
}

type stage int

const (
	stageNone stage = iota
	stageDescription
	stagePriority
)

// listItem adapts a store entry to bubbles/list.Item
type listItem struct {
	entry store.Entry
}

func (i listItem) Title() string {
	t := i.entry.Task
	return fmt.Sprintf("%d. Priority: %d - %s", i.entry.Position, t.Priority, t.Description)
}
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.entry.Task.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	th := ui.Current()
	task := it.entry.Task
	mark := th.Muted.Render("[" + th.MarkPending + "]")
	desc := task.Description
	if task.Completed {
		mark = th.Success.Render("[" + th.MarkDone + "]")
		desc = th.Done.Render(desc)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%2d. %s %s %s", prefix, it.entry.Position, mark,
		th.Accent.Render(fmt.Sprintf("P%d", task.Priority)), desc)
}

var selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

type keyMap struct {
	add, remove, complete, priority, cycle, quit key.Binding
}

var keys = keyMap{
	add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	remove:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	complete: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "complete")),
	priority: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "priority")),
	cycle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
	quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.add, k.remove, k.complete, k.priority, k.cycle}
}

// Model is the Bubble Tea model. The store is the only source of truth;
// the list is rebuilt from it after every mutation.
type Model struct {
	store *store.TaskStore
	log   *log.Logger

	list list.Model
	ti   textinput.Model
	view view

	stage       stage
	description string // held between the description and priority prompts

	status    string
	statusErr bool
	width     int
	height    int
}

// New builds a model over st.
func New(st *store.TaskStore, logger *log.Logger) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.Title = ui.Current().Title
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0 // descriptions are unbounded

	m := Model{store: st, log: logger, list: l, ti: ti, width: 80, height: 24}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(st *store.TaskStore, in io.Reader, out io.Writer, logger *log.Logger) error {
	p := tea.NewProgram(New(st, logger), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.stage != stageNone {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(km, keys.quit):
		return m, tea.Quit
	case key.Matches(km, keys.add):
		m.stage = stageDescription
		m.ti.SetValue("")
		m.ti.Placeholder = "Task description..."
		m.resize()
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(km, keys.remove):
		if pos, ok := m.selected(); ok {
			m.apply("removed", m.store.Remove(pos), "position", pos)
		}
		return m, nil
	case key.Matches(km, keys.complete):
		if pos, ok := m.selected(); ok {
			m.apply("marked complete", m.store.MarkComplete(pos), "position", pos)
		}
		return m, nil
	case key.Matches(km, keys.priority):
		if pos, ok := m.selected(); ok {
			p, _ := strconv.Atoi(km.String())
			m.apply(fmt.Sprintf("priority set to %d", p), m.store.ChangePriority(pos, p), "position", pos, "priority", p)
		}
		return m, nil
	case key.Matches(km, keys.cycle):
		m.view = (m.view + 1) % 3
		m.refresh()
		m.list.Select(0)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateInput handles the two-step add prompt.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeInput()
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.ti.Value())
			if m.stage == stageDescription {
				if value == "" {
					m.setError(store.ErrEmptyDescription.Error())
					return m, nil
				}
				m.description = value
				m.stage = stagePriority
				m.ti.SetValue("")
				m.ti.Placeholder = fmt.Sprintf("Priority (%d-%d)", model.MinPriority, model.MaxPriority)
				m.status = ""
				return m, nil
			}
			p, err := strconv.Atoi(value)
			if err != nil {
				m.setError(store.ErrInvalidPriority.Error())
				return m, nil
			}
			if err := m.store.Add(m.description, p); err != nil {
				m.setError(err.Error())
				return m, nil
			}
			m.log.Debug("task added", "position", m.store.Len(), "priority", p)
			m.closeInput()
			m.status, m.statusErr = "added", false
			m.view = viewAll
			m.refresh()
			m.list.Select(len(m.list.Items()) - 1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) apply(done string, err error, kv ...any) {
	if err != nil {
		m.log.Debug("rejected", append(kv, "err", err)...)
		m.setError(err.Error())
		return
	}
	m.log.Debug("task "+done, kv...)
	m.status, m.statusErr = done, false
	m.refresh()
}

func (m *Model) setError(msg string) {
	m.status, m.statusErr = msg, true
}

func (m *Model) closeInput() {
	m.stage = stageNone
	m.description = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// selected returns the store position under the cursor.
func (m Model) selected() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		m.log.Debug("no task selected")
		return 0, false
	}
	return it.entry.Position, true
}

// refresh rebuilds list items from the store for the current view.
func (m *Model) refresh() {
	var entries []store.Entry
	switch m.view {
	case viewPending:
		entries = collect(m.store.Pending())
	case viewCompleted:
		entries = collect(m.store.Completed())
	default:
		entries = m.store.List()
	}
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = listItem{entry: e}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.list.Title = m.title()
}

func (m Model) title() string {
	done, pending := m.store.Stats()
	th := ui.Current()
	return fmt.Sprintf("Tasks [%s]   %s %d  • %d  Total %d", m.view, th.SymOK, done, pending, m.store.Len())
}

func (m *Model) resize() {
	h := m.height - 4
	if m.stage != stageNone {
		h -= 2
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m Model) View() string {
	th := ui.Current()
	content := m.list.View()
	if m.stage != stageNone {
		label := "Add task: description"
		if m.stage == stagePriority {
			label = "Add task: priority for " + strconv.Quote(m.description)
		}
		content += "\n" + ui.Frame().Render(label+"\n"+m.ti.View())
	}
	if m.status != "" {
		style := th.Success
		if m.statusErr {
			style = th.Error
		}
		content += "\n" + style.Render(m.status)
	}
	return ui.Frame().Render(content)
}

func collect(seq iter.Seq2[int, model.Task]) []store.Entry {
	var out []store.Entry
	for pos, t := range seq {
		out = append(out, store.Entry{Position: pos, Task: t})
	}
	return out
}
