// Package tui renders the interactive workflow dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/pager"
	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/utils"
)

const (
	colWidthName     = 32
	colWidthUnique   = 28
	colWidthCategory = 20
	colWidthState    = 10
	colWidthModified = 19

	timeLayout = "2006-01-02 15:04:05"
)

// sortFields are the columns the dashboard can order by.
var sortFields = []string{"modifiedon", "name", "createdon"}

// fetchDoneMsg reports a resolved pager trigger. started is false when the
// trigger was dropped by the single-flight guard.
type fetchDoneMsg struct {
	started bool
	err     error
}

// Model is the Bubble Tea model for the workflow dashboard.
type Model struct {
	pager *pager.Pager
	ctx   context.Context
	theme Theme

	table   table.Model
	search  textinput.Model
	spinner spinner.Model

	// staged filter controls; committed to the pager draft and applied on
	// enter / 'a'
	category int // -1 = all
	state    int // -1 = all
	stale    bool

	sortIdx  int
	sortDesc bool

	searching bool
	loading   bool
	width     int
}

// NewModel creates the dashboard model around a pager.
func NewModel(ctx context.Context, p *pager.Pager, theme Theme) Model {
	search := textinput.New()
	search.Placeholder = "search name or unique name"
	search.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(store.PageSize+1),
	)

	return Model{
		pager:    p,
		ctx:      ctx,
		theme:    theme,
		table:    t,
		search:   search,
		spinner:  sp,
		category: -1,
		state:    -1,
		sortDesc: true,
	}
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: colWidthName},
		{Title: "Unique Name", Width: colWidthUnique},
		{Title: "Category", Width: colWidthCategory},
		{Title: "State", Width: colWidthState},
		{Title: "Modified", Width: colWidthModified},
	}
}

// Init triggers the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.applyCmd())
}

// Update handles key, resize and fetch-resolution messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		// dropped triggers resolve too; the spinner must never outlive them
		m.loading = false
		if msg.started {
			m.reloadRows()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateSearch handles keys while the search input is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.stageDraft()
		return m.startFetch(m.applyCmd())
	case tea.KeyEsc:
		// discard the edit, restore the applied term
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.pager.Applied().Search)
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

// updateBrowse handles keys in the normal table view.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "n", "right":
		return m.startFetch(m.nextCmd())

	case "p", "left":
		return m.startFetch(m.prevCmd())

	case "c":
		m.category++
		if m.category > store.CategoryModernFlow.EnumIndex() {
			m.category = -1
		}
		m.stale = true
		return m, nil

	case "s":
		m.state++
		if m.state > store.StateSuspended.EnumIndex() {
			m.state = -1
		}
		m.stale = true
		return m, nil

	case "enter", "a":
		m.stageDraft()
		return m.startFetch(m.applyCmd())

	case "o":
		m.sortIdx = (m.sortIdx + 1) % len(sortFields)
		return m.startFetch(m.sortCmd())

	case "d":
		m.sortDesc = !m.sortDesc
		return m.startFetch(m.sortCmd())

	case "r":
		return m.startFetch(m.refreshCmd())
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// stageDraft pushes the staged controls into the pager draft.
func (m *Model) stageDraft() {
	draft := store.FilterSet{Search: strings.TrimSpace(m.search.Value())}
	if m.category >= 0 {
		draft.Category = utils.Ptr(store.Category(m.category))
	}
	if m.state >= 0 {
		draft.State = utils.Ptr(store.State(m.state))
	}
	m.pager.SetDraft(draft)
	m.stale = false
}

func (m Model) startFetch(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m Model) applyCmd() tea.Cmd {
	return func() tea.Msg {
		started, err := m.pager.Apply(m.ctx)
		return fetchDoneMsg{started: started, err: err}
	}
}

func (m Model) sortCmd() tea.Cmd {
	sort := store.SortSpec{Field: sortFields[m.sortIdx], Order: store.SortAsc}
	if m.sortDesc {
		sort.Order = store.SortDesc
	}
	return func() tea.Msg {
		started, err := m.pager.SetSort(m.ctx, sort)
		return fetchDoneMsg{started: started, err: err}
	}
}

func (m Model) nextCmd() tea.Cmd {
	return func() tea.Msg {
		started, err := m.pager.Next(m.ctx)
		return fetchDoneMsg{started: started, err: err}
	}
}

func (m Model) prevCmd() tea.Cmd {
	return func() tea.Msg {
		started, err := m.pager.Prev(m.ctx)
		return fetchDoneMsg{started: started, err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		started, err := m.pager.Refresh(m.ctx)
		return fetchDoneMsg{started: started, err: err}
	}
}

// reloadRows rebuilds the table from the pager's current records.
func (m *Model) reloadRows() {
	records := m.pager.Records()
	rows := make([]table.Row, 0, len(records))
	for _, w := range records {
		rows = append(rows, table.Row{
			truncate(w.Name, colWidthName),
			truncate(w.UniqueName, colWidthUnique),
			categoryLabel(w),
			stateLabel(w),
			modifiedLabel(w),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func categoryLabel(w store.Workflow) string {
	if w.CategoryLabel != "" {
		return w.CategoryLabel
	}
	return w.Category.String()
}

func stateLabel(w store.Workflow) string {
	if w.StateLabel != "" {
		return w.StateLabel
	}
	return w.StateCode.String()
}

func modifiedLabel(w store.Workflow) string {
	if w.ModifiedOn == nil {
		return ""
	}
	return w.ModifiedOn.Format(timeLayout)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// View renders the dashboard. A fetch error suppresses the record table
// until the next successful fetch.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("AutomateFlow Tracker"))
	b.WriteString("\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n")

	if err := m.pager.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(fmt.Sprintf("error: %v", err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.theme.TableBase.Render(m.table.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) filterBar() string {
	category := "all"
	if m.category >= 0 {
		category = store.Category(m.category).String()
	}
	state := "all"
	if m.state >= 0 {
		state = store.State(m.state).String()
	}
	order := store.SortAsc
	if m.sortDesc {
		order = store.SortDesc
	}

	search := m.search.Value()
	if m.searching {
		search = m.search.View()
	} else if search == "" {
		search = "-"
	}

	bar := fmt.Sprintf("search: %s  category: %s  state: %s  sort: %s %s",
		search, category, state, sortFields[m.sortIdx], order)
	if m.stale {
		return m.theme.Staged.Render(bar + "  (press enter to apply)")
	}
	return m.theme.FilterBar.Render(bar)
}

func (m Model) footer() string {
	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " loading…"
	default:
		next := ""
		if m.pager.HasNext() {
			next = " • more available"
		}
		status = fmt.Sprintf("page %d • %d total%s", m.pager.Page(), m.pager.TotalCount(), next)
	}

	help := "n/p page • / search • c category • s state • o sort • d direction • r refresh • q quit"
	return status + "\n" + m.theme.Footer.Render(help)
}
