// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/booksearch/internal/debounce"
	"github.com/pdiddy/booksearch/internal/testutil"
)

const delay = 450 * time.Millisecond

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) emit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncer_EmitsAfterQuiescence(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	d := debounce.New(delay, clock, rec.emit)

	d.Set("Dune")
	clock.Advance(delay - time.Millisecond)
	assert.Empty(t, rec.got(), "must not emit before the delay elapses")

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"Dune"}, rec.got())

	clock.Advance(10 * delay)
	assert.Equal(t, []string{"Dune"}, rec.got(), "must emit exactly once")
}

func TestDebouncer_LastWriteWins(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	d := debounce.New(delay, clock, rec.emit)

	for _, v := range []string{"D", "Du", "Dun", "Dune", "Dune ", "Dune"} {
		d.Set(v)
		clock.Advance(delay / 3)
	}
	assert.Empty(t, rec.got())
	assert.True(t, d.Pending())

	clock.Advance(delay)
	assert.Equal(t, []string{"Dune"}, rec.got())
	assert.False(t, d.Pending())
	assert.Equal(t, 0, clock.Pending(), "superseded timers must be cancelled")
}

func TestDebouncer_EmitsEachSettledValue(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	d := debounce.New(delay, clock, rec.emit)

	d.Set("a")
	clock.Advance(delay)
	d.Set("b")
	clock.Advance(delay)
	d.Set("")
	clock.Advance(delay)

	assert.Equal(t, []string{"a", "b", ""}, rec.got())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	d := debounce.New(delay, clock, rec.emit)

	d.Set("Dune")
	d.Stop()
	clock.Advance(2 * delay)
	assert.Empty(t, rec.got(), "no emission after Stop")

	d.Set("Emma")
	clock.Advance(2 * delay)
	assert.Empty(t, rec.got(), "Set after Stop is ignored")
	assert.Equal(t, 0, clock.Pending())
}

func TestDebouncer_RealClock(t *testing.T) {
	done := make(chan string, 1)
	d := debounce.New(5*time.Millisecond, nil, func(v string) { done <- v })
	d.Set("first")
	d.Set("second")

	select {
	case v := <-done:
		require.Equal(t, "second", v)
	case <-time.After(time.Second):
		t.Fatal("debouncer did not emit")
	}
	d.Stop()
}
