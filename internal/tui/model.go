// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui provides the Bubble Tea terminal UI for booksearch.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/booksearch/internal/search"
	"github.com/pdiddy/booksearch/pkg/types"
)

// Searcher is the part of search.Controller the UI drives.
type Searcher interface {
	SetInput(raw string)
	NextPage()
	PrevPage()
	Retry()
	Snapshot() types.State
}

// Model is the root Bubble Tea model. It holds no search state of its own
// beyond the last snapshot received from the controller.
type Model struct {
	search  Searcher
	updates *Updates
	input   textinput.Model
	spinner spinner.Model
	state   types.State
	width   int
}

// New returns a Model driving s and rendering snapshots delivered through u.
func New(s Searcher, u *Updates) Model {
	ti := textinput.New()
	ti.Placeholder = "Search books by title..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = enabledStyle

	return Model{
		search:  s,
		updates: u,
		input:   ti,
		spinner: sp,
		state:   s.Snapshot(),
	}
}

// Init starts the cursor blink, the spinner and the snapshot subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.updates.Wait())
}

// Update handles key presses and controller snapshots.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(20, msg.Width-6)
		return m, nil

	case StateMsg:
		m.state = types.State(msg)
		return m, m.updates.Wait()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+n", "pgdown":
		m.search.NextPage()
		return m, nil
	case "ctrl+p", "pgup":
		m.search.PrevPage()
		return m, nil
	case "ctrl+r":
		m.search.Retry()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.search.SetInput(v)
	}
	return m, cmd
}

// View renders the search box, status line, result cards and pager.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Open Library book search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	st := m.state
	switch st.Status {
	case types.StatusIdle:
		b.WriteString(mutedStyle.Render("Type a title to start searching."))
		b.WriteString("\n")
	case types.StatusLoading:
		b.WriteString(m.spinner.View() + " Searching...")
		b.WriteString("\n")
	case types.StatusFailed:
		b.WriteString(errorStyle.Render(st.Err))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("ctrl+r to retry"))
		b.WriteString("\n")
	}

	if st.Status != types.StatusIdle {
		if st.Status == types.StatusSuccess && len(st.Books) == 0 {
			b.WriteString("No results found")
			b.WriteString("\n")
		}
		for i, book := range st.Books {
			b.WriteString(renderCard(types.Offset(st.Page)+i+1, book))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(renderPager(st))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("ctrl+p/pgup prev • ctrl+n/pgdown next • esc quit"))
	return b.String()
}

func renderCard(n int, book types.Book) string {
	cover := search.NoCover
	if book.HasCover() {
		cover = book.CoverURL
	}
	lines := []string{
		fmt.Sprintf("%d. %s", n, bookTitleStyle.Render(book.Title)),
		search.FormatAuthors(book.Authors) + mutedStyle.Render(" · "+search.FormatYear(book.FirstPublishYear)),
		mutedStyle.Render("cover: " + cover),
		linkStyle.Render(book.DetailURL),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderPager(st types.State) string {
	prev, next := disabledStyle.Render("< prev"), disabledStyle.Render("next >")
	if st.CanPrev() {
		prev = enabledStyle.Render("< prev")
	}
	if st.CanNext() {
		next = enabledStyle.Render("next >")
	}
	return fmt.Sprintf("%s  %s  %s", prev, search.PagerLine(st.Page, st.TotalPages()), next)
}
