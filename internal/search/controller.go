// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search drives an interactive title search: raw input is debounced
// into an effective query, the page is reset whenever that query changes,
// and one cancellable request is issued per (query, page) key.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/booksearch/internal/debounce"
	"github.com/pdiddy/booksearch/pkg/types"
)

// Fetcher retrieves one page of results for a title query. Implementations
// should abort when ctx is cancelled, but the controller does not rely on it.
type Fetcher interface {
	Search(ctx context.Context, title string, page int) (types.Page, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithDebounce sets the input quiescence delay (default 450ms).
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithClock replaces the wall clock used by the debouncer.
func WithClock(clock debounce.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithLogger sets the logger (default no-op).
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithListener registers fn to receive a snapshot after every state change.
// fn is called outside the controller's lock and never receives a snapshot
// older than one it has already seen.
func WithListener(fn func(types.State)) Option {
	return func(c *Controller) { c.listener = fn }
}

// Controller owns the search state for one view. Create it with New and
// release it with Close.
type Controller struct {
	fetcher  Fetcher
	delay    time.Duration
	clock    debounce.Clock
	logger   *zap.Logger
	listener func(types.State)
	input    *debounce.Debouncer[string]

	ctx      context.Context
	shutdown context.CancelFunc
	wg       sync.WaitGroup

	mu      sync.Mutex
	state   types.State
	token   string
	cancel  context.CancelFunc
	closed  bool
	version uint64

	pubMu     sync.Mutex
	published uint64
}

// New returns an idle Controller that fetches through f.
func New(f Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: f,
		delay:   types.DefaultDebounce,
		logger:  zap.NewNop(),
		state:   types.State{Page: 1, Status: types.StatusIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.ctx, c.shutdown = context.WithCancel(context.Background())
	c.input = debounce.New(c.delay, c.clock, c.setEffective)
	return c
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() types.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SetInput records a keystroke. The effective query follows once the input
// has been stable for the debounce delay.
func (c *Controller) SetInput(raw string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.RawQuery = raw
	v, st := c.bumpLocked()
	c.mu.Unlock()

	c.publish(v, st)
	c.input.Set(raw)
}

// NextPage advances one page. It is a no-op on the last page or when there
// are no results.
func (c *Controller) NextPage() {
	c.changePage(func(s types.State) int {
		if !s.CanNext() {
			return s.Page
		}
		return min(s.Page+1, types.TotalPages(s.NumFound))
	})
}

// PrevPage goes back one page. It is a no-op on page 1.
func (c *Controller) PrevPage() {
	c.changePage(func(s types.State) int {
		return max(1, s.Page-1)
	})
}

// Retry re-issues the request for the current query and page. It does
// nothing while idle.
func (c *Controller) Retry() {
	c.mu.Lock()
	if c.closed || c.state.Status == types.StatusIdle {
		c.mu.Unlock()
		return
	}
	c.refreshLocked()
	v, st := c.bumpLocked()
	c.mu.Unlock()

	c.publish(v, st)
}

// Close cancels the pending debounce timer and any in-flight request, then
// waits for request goroutines to return. The controller ignores all calls
// afterwards.
func (c *Controller) Close() {
	c.input.Stop()

	c.mu.Lock()
	if !c.closed {
		c.closed = true
		c.supersedeLocked()
		c.shutdown()
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) changePage(next func(types.State) int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	page := next(c.state)
	if page == c.state.Page {
		c.mu.Unlock()
		return
	}
	c.state.Page = page
	c.refreshLocked()
	v, st := c.bumpLocked()
	c.mu.Unlock()

	c.publish(v, st)
}

// setEffective receives settled input from the debouncer. A changed query
// always restarts at page 1 before its first request is issued.
func (c *Controller) setEffective(q string) {
	c.mu.Lock()
	if c.closed || q == c.state.EffectiveQuery {
		c.mu.Unlock()
		return
	}
	c.state.EffectiveQuery = q
	c.state.Page = 1
	c.refreshLocked()
	v, st := c.bumpLocked()
	c.mu.Unlock()

	c.publish(v, st)
}

// refreshLocked supersedes the current request and, for a non-empty query,
// issues a new one for the current key.
func (c *Controller) refreshLocked() {
	c.supersedeLocked()

	q, page := c.state.EffectiveQuery, c.state.Page
	if strings.TrimSpace(q) == "" {
		c.state.Status = types.StatusIdle
		c.state.Books = nil
		c.state.NumFound = 0
		c.state.Err = ""
		return
	}

	ctx, cancel := context.WithCancel(c.ctx)
	token := uuid.NewString()
	c.token = token
	c.cancel = cancel
	c.state.Status = types.StatusLoading
	c.state.Err = ""

	c.logger.Debug("issuing search",
		zap.String("request_id", token), zap.String("query", q), zap.Int("page", page))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		res, err := c.fetcher.Search(ctx, q, page)
		c.resolve(token, res, err)
	}()
}

// supersedeLocked cancels the in-flight request and forgets its token so a
// late response can no longer be applied.
func (c *Controller) supersedeLocked() {
	if c.cancel != nil {
		c.logger.Debug("superseding search", zap.String("request_id", c.token))
		c.cancel()
	}
	c.cancel = nil
	c.token = ""
}

func (c *Controller) resolve(token string, res types.Page, err error) {
	c.mu.Lock()
	// Requests the controller cancels have already lost their token, so a
	// cancellation that reaches this point came from the fetcher and is a
	// failure like any other.
	if c.closed || token != c.token {
		c.mu.Unlock()
		c.logger.Debug("discarding superseded response", zap.String("request_id", token))
		return
	}

	c.cancel()
	c.cancel = nil
	c.token = ""
	if err != nil {
		c.state.Status = types.StatusFailed
		c.state.Err = failureMessage(err)
		c.logger.Warn("search failed", zap.String("request_id", token), zap.Error(err))
	} else {
		books := res.Books
		if books == nil {
			books = []types.Book{}
		}
		c.state.Status = types.StatusSuccess
		c.state.Books = books
		c.state.NumFound = max(0, res.NumFound)
		c.state.Err = ""
		c.logger.Debug("search succeeded", zap.String("request_id", token),
			zap.Int("books", len(books)), zap.Int("num_found", res.NumFound))
	}
	v, st := c.bumpLocked()
	c.mu.Unlock()

	c.publish(v, st)
}

func (c *Controller) bumpLocked() (uint64, types.State) {
	c.version++
	return c.version, c.snapshotLocked()
}

func (c *Controller) snapshotLocked() types.State {
	st := c.state
	if st.Books != nil {
		st.Books = append([]types.Book{}, st.Books...)
	}
	return st
}

// publish hands st to the listener unless a newer snapshot was already
// delivered.
func (c *Controller) publish(v uint64, st types.State) {
	if c.listener == nil {
		return
	}
	c.pubMu.Lock()
	defer c.pubMu.Unlock()
	if v <= c.published {
		return
	}
	c.published = v
	c.listener(st)
}

func failureMessage(err error) string {
	return "Failed to fetch results: " + err.Error()
}
