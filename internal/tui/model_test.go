// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/booksearch/pkg/types"
)

type fakeSearcher struct {
	inputs []string
	next   int
	prev   int
	retry  int
	state  types.State
}

func (f *fakeSearcher) SetInput(raw string) { f.inputs = append(f.inputs, raw) }
func (f *fakeSearcher) NextPage() { f.next++ }
func (f *fakeSearcher) PrevPage() { f.prev++ }
func (f *fakeSearcher) Retry() { f.retry++ }
func (f *fakeSearcher) Snapshot() types.State { return f.state }

func newTestModel() (Model, *fakeSearcher) {
	fs := &fakeSearcher{state: types.State{Page: 1}}
	return New(fs, NewUpdates()), fs
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func withState(m Model, st types.State) Model {
	next, _ := m.Update(StateMsg(st))
	return next.(Model)
}

func books(n int) []types.Book {
	out := make([]types.Book, n)
	for i := range out {
		out[i] = types.Book{
			Title:     fmt.Sprintf("Dune %d", i+1),
			DetailURL: fmt.Sprintf("https://openlibrary.org/works/OL%dW", i+1),
		}
	}
	return out
}

func TestModelForwardsKeystrokes(t *testing.T) {
	m, fs := newTestModel()
	m = typeText(m, "Dune")

	assert.Equal(t, []string{"D", "Du", "Dun", "Dune"}, fs.inputs)

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "Dun", fs.inputs[len(fs.inputs)-1])

	// Cursor movement does not change the value.
	n := len(fs.inputs)
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Len(t, fs.inputs, n)
}

func TestModelPagerKeys(t *testing.T) {
	m, fs := newTestModel()
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m = press(m, tea.KeyMsg{Type: tea.KeyPgDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, 2, fs.next)
	assert.Equal(t, 1, fs.prev)
	assert.Equal(t, 1, fs.retry)
	assert.Empty(t, fs.inputs, "pager keys must not edit the query")
}

func TestModelQuits(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelViewIdle(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()
	assert.Contains(t, view, "Type a title to start searching.")
	assert.NotContains(t, view, "Page 1 of")
}

func TestModelViewDuneFirstPage(t *testing.T) {
	m, _ := newTestModel()
	m = withState(m, types.State{
		EffectiveQuery: "Dune",
		Page:           1,
		Status:         types.StatusSuccess,
		Books:          books(20),
		NumFound:       45,
	})
	view := m.View()

	assert.Equal(t, 20, strings.Count(view, "cover: no cover available"))
	assert.Contains(t, view, "Page 1 of 3")
	assert.Contains(t, view, "https://openlibrary.org/works/OL20W")
	assert.NotContains(t, view, "No results found")
}

func TestModelViewNoResults(t *testing.T) {
	m, _ := newTestModel()
	m = withState(m, types.State{
		EffectiveQuery: "zzzzqqqqnotabook",
		Page:           1,
		Status:         types.StatusSuccess,
		Books:          []types.Book{},
	})
	view := m.View()
	assert.Contains(t, view, "No results found")
	assert.Contains(t, view, "Page 1 of 1")
}

func TestModelViewFailureKeepsResults(t *testing.T) {
	m, _ := newTestModel()
	m = withState(m, types.State{
		EffectiveQuery: "Dune",
		Page:           2,
		Status:         types.StatusFailed,
		Books:          books(3),
		NumFound:       45,
		Err:            "Failed to fetch results: HTTP 503",
	})
	view := m.View()
	assert.Contains(t, view, "Failed to fetch results: HTTP 503")
	assert.Contains(t, view, "Dune 1")
	assert.Contains(t, view, "ctrl+r to retry")
}

func TestModelViewLoading(t *testing.T) {
	m, _ := newTestModel()
	m = withState(m, types.State{EffectiveQuery: "Dune", Page: 1, Status: types.StatusLoading})
	assert.Contains(t, m.View(), "Searching...")
}

func TestUpdatesKeepsLatest(t *testing.T) {
	u := NewUpdates()
	u.Publish(types.State{RawQuery: "D"})
	u.Publish(types.State{RawQuery: "Du"})
	u.Publish(types.State{RawQuery: "Dun"})

	done := make(chan tea.Msg, 1)
	go func() { done <- u.Wait()() }()

	select {
	case msg := <-done:
		assert.Equal(t, "Dun", types.State(msg.(StateMsg)).RawQuery)
	case <-time.After(time.Second):
		t.Fatal("Wait did not deliver")
	}
}
