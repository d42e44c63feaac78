// Package list implements the list-view fetch controller: it turns
// debounced search/filter edits and paging actions into fetch cycles,
// coordinates the page request with the (cached) count request, and
// publishes one immutable Result per cycle.
//
// Overlapping cycles are resolved by issue order, not arrival order:
// every cycle gets a sequence number and a cancelable context; a response
// from a superseded cycle is both aborted in flight and discarded if it
// lands anyway. The UI therefore always shows results for the current
// filter state, never a stale one.
package list

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/groundswellhq/rolodex/internal/client"
	"github.com/groundswellhq/rolodex/internal/countcache"
	"github.com/groundswellhq/rolodex/internal/model"
	"github.com/groundswellhq/rolodex/internal/pagination"
	"github.com/groundswellhq/rolodex/internal/query"
)

// DefaultDebounce is how long input must pause before a fetch fires.
const DefaultDebounce = 300 * time.Millisecond

// Fetcher issues the two requests a fetch cycle needs. Implementations
// wrap one resource of a client.CRMClient; tests supply fakes.
type Fetcher[T any] interface {
	List(ctx context.Context, params url.Values) (*client.Page[T], error)
	Count(ctx context.Context, params url.Values) (int, error)
}

// Result is the outcome of one fetch cycle. It is never mutated after
// publication; the next cycle replaces it wholesale. On failure Err is
// set and the rest degrades to empty/zero so renderers can treat every
// cycle uniformly.
type Result[T any] struct {
	Records    []T
	TotalCount int

	// TotalKnown is false when no exact total was available: the count
	// request failed and the page envelope carried no count (always the
	// case in cursor mode). Renderers should show "N+" rather than a
	// zero that is simply wrong.
	TotalKnown bool

	NextCursor string
	PrevCursor string
	Meta       map[string]any
	Err        error
}

// Controller drives list fetches for one resource. All methods are safe
// for concurrent use.
type Controller[T any] struct {
	fetcher  Fetcher[T]
	counts   *countcache.Cache
	debounce time.Duration

	mu        sync.Mutex
	rawSearch string
	search    string // debounced
	rawFilter query.Source
	filter    query.Source // debounced
	page      pagination.State
	lastMode  pagination.Mode
	result    Result[T]
	seq       uint64
	cancel    context.CancelFunc // in-flight cycle, nil when idle

	searchTimer *time.Timer
	filterTimer *time.Timer

	baseCtx   context.Context
	baseStop  context.CancelFunc
	updates   chan Result[T]
	closeOnce sync.Once
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	pageSize int
	debounce time.Duration
	counts   *countcache.Cache
}

// WithPageSize sets the page size for both paging modes.
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

// WithDebounce overrides the input debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithCountCache shares a count cache with the rest of the application so
// that write paths can invalidate it.
func WithCountCache(c *countcache.Cache) Option {
	return func(o *options) { o.counts = c }
}

// NewController creates an idle controller. Nothing is fetched until an
// input changes or Refresh is called.
func NewController[T any](fetcher Fetcher[T], opts ...Option) *Controller[T] {
	o := options{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&o)
	}
	if o.counts == nil {
		o.counts = countcache.New()
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Controller[T]{
		fetcher:  fetcher,
		counts:   o.counts,
		debounce: o.debounce,
		page:     pagination.NewState(o.pageSize),
		lastMode: pagination.ModeCursor,
		baseCtx:  ctx,
		baseStop: stop,
		updates:  make(chan Result[T], 1),
	}
}

// Close aborts any in-flight cycle and stops the debounce timers.
func (c *Controller[T]) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		if c.searchTimer != nil {
			c.searchTimer.Stop()
		}
		if c.filterTimer != nil {
			c.filterTimer.Stop()
		}
		c.mu.Unlock()
		c.baseStop()
	})
}

// SetSearch records a raw search edit. The fetch fires only after the
// term has been stable for the debounce interval.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rawSearch = term
	if c.searchTimer == nil {
		c.searchTimer = time.AfterFunc(c.debounce, c.applySearch)
		return
	}
	c.searchTimer.Reset(c.debounce)
}

func (c *Controller[T]) applySearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = c.rawSearch
	c.refreshLocked()
}

// IsSearching reports whether a search edit is still waiting out the
// debounce. UI feedback only; not a correctness signal.
func (c *Controller[T]) IsSearching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rawSearch != c.search
}

// SetFilter records a filter edit, debounced independently of search.
func (c *Controller[T]) SetFilter(f query.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rawFilter = f
	if c.filterTimer == nil {
		c.filterTimer = time.AfterFunc(c.debounce, c.applyFilter)
		return
	}
	c.filterTimer.Reset(c.debounce)
}

func (c *Controller[T]) applyFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = c.rawFilter
	c.refreshLocked()
}

// SortBy applies the sort-toggle semantics (new column → ascending, same
// column → flip direction), lands in offset mode with position reset, and
// fetches immediately.
func (c *Controller[T]) SortBy(column string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.SortBy(column)
	c.refreshLocked()
}

// ClearSort returns to cursor mode with position reset and fetches.
func (c *Controller[T]) ClearSort() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.ClearSort()
	c.refreshLocked()
}

// NextPage advances one page in the active mode and fetches. Reports
// false (and fetches nothing) when there is no next page token.
func (c *Controller[T]) NextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.page.Advance() {
		return false
	}
	c.refreshLocked()
	return true
}

// PrevPage steps back one page and fetches. Reports false at the start.
func (c *Controller[T]) PrevPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.page.Retreat() {
		return false
	}
	c.refreshLocked()
	return true
}

// Refresh starts a fetch cycle immediately with the current debounced
// inputs, bypassing the debounce.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
}

// Result returns the most recently published result.
func (c *Controller[T]) Result() Result[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Page returns a snapshot of the pagination state.
func (c *Controller[T]) Page() pagination.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Updates delivers each newly published result. The channel holds only
// the latest result; a slow reader sees the freshest state, not a backlog.
func (c *Controller[T]) Updates() <-chan Result[T] {
	return c.updates
}

// InvalidateCounts drops all cached counts. Called after any write that
// could change which records match existing filters.
func (c *Controller[T]) InvalidateCounts() {
	c.counts.Clear()
}

// refreshLocked starts a fetch cycle. Caller holds c.mu.
func (c *Controller[T]) refreshLocked() {
	c.seq++
	seq := c.seq

	// Abort the superseded cycle outright; its result would be discarded
	// by the sequence check anyway, this just stops the wasted work.
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(c.baseCtx)
	c.cancel = cancel

	if mode := c.page.Mode(); mode != c.lastMode {
		c.page.ResetPosition()
		c.lastMode = mode
	}

	countParams := query.Build(c.filter, c.search)
	cacheKey := countParams.Encode()

	pageParams := url.Values{}
	for key, vals := range countParams {
		pageParams[key] = append([]string(nil), vals...)
	}
	c.page.Apply(pageParams)

	go c.runFetch(ctx, seq, pageParams, countParams, cacheKey)
}

func (c *Controller[T]) runFetch(ctx context.Context, seq uint64, pageParams, countParams url.Values, cacheKey string) {
	page, err := c.fetcher.List(ctx, pageParams)
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("list fetch failed", "error", err)
		}
		c.publish(seq, Result[T]{Err: err})
		return
	}

	res := Result[T]{
		Records:    page.Records,
		NextCursor: page.NextCursor,
		PrevCursor: page.PrevCursor,
		Meta:       page.Meta,
	}

	if cached, ok := c.counts.Get(cacheKey); ok {
		res.TotalCount = cached
		res.TotalKnown = true
	} else if n, cerr := c.fetcher.Count(ctx, countParams); cerr == nil {
		c.counts.Set(cacheKey, n)
		res.TotalCount = n
		res.TotalKnown = true
	} else {
		// Count is best-effort, never load-blocking: fall back to the
		// page envelope's total when the offset envelope carries one.
		if ctx.Err() == nil {
			slog.Warn("count fetch failed, using best-effort total", "error", cerr)
		}
		if page.HasCount {
			res.TotalCount = page.Count
			res.TotalKnown = true
		}
	}

	c.publish(seq, res)
}

// publish installs a cycle's result unless a newer cycle has been issued
// since, and pushes it to the updates channel, keeping only the latest.
func (c *Controller[T]) publish(seq uint64, res Result[T]) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.result = res
	if res.Err == nil && c.page.Mode() == pagination.ModeCursor {
		c.page.NextCursor = res.NextCursor
		c.page.PrevCursor = res.PrevCursor
	}
	c.mu.Unlock()

	for {
		select {
		case c.updates <- res:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

// Contacts adapts a CRMClient's contact endpoints to the Fetcher interface.
func Contacts(c client.CRMClient) Fetcher[model.Contact] {
	return contactFetcher{c}
}

type contactFetcher struct{ c client.CRMClient }

func (f contactFetcher) List(ctx context.Context, params url.Values) (*client.Page[model.Contact], error) {
	return f.c.ListContacts(ctx, params)
}

func (f contactFetcher) Count(ctx context.Context, params url.Values) (int, error) {
	return f.c.CountContacts(ctx, params)
}

// Companies adapts a CRMClient's company endpoints to the Fetcher interface.
func Companies(c client.CRMClient) Fetcher[model.Company] {
	return companyFetcher{c}
}

type companyFetcher struct{ c client.CRMClient }

func (f companyFetcher) List(ctx context.Context, params url.Values) (*client.Page[model.Company], error) {
	return f.c.ListCompanies(ctx, params)
}

func (f companyFetcher) Count(ctx context.Context, params url.Values) (int, error) {
	return f.c.CountCompanies(ctx, params)
}
