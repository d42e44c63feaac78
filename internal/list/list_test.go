package list

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/groundswellhq/rolodex/internal/client"
	"github.com/groundswellhq/rolodex/internal/countcache"
	"github.com/groundswellhq/rolodex/internal/query"
)

// fakeFetcher is a scriptable Fetcher that records the parameters of
// every call.
type fakeFetcher struct {
	mu          sync.Mutex
	listParams  []url.Values
	countParams []url.Values
	page        client.Page[string]
	listErr     error
	count       int
	countErr    error
}

func (f *fakeFetcher) List(ctx context.Context, params url.Values) (*client.Page[string], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listParams = append(f.listParams, params)
	if f.listErr != nil {
		return nil, f.listErr
	}
	page := f.page
	return &page, nil
}

func (f *fakeFetcher) Count(ctx context.Context, params url.Values) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countParams = append(f.countParams, params)
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeFetcher) listCalls() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.listParams...)
}

func (f *fakeFetcher) countCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.countParams)
}

type stubFilter []query.Field

func (s stubFilter) Fields() []query.Field { return s }

// waitResult blocks until the controller publishes, with a test deadline.
func waitResult[T any](t *testing.T, ctrl *Controller[T]) Result[T] {
	t.Helper()
	select {
	case res := <-ctrl.Updates():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a result")
	}
	panic("unreachable")
}

func TestRefresh_PublishesRecordsAndCount(t *testing.T) {
	f := &fakeFetcher{
		page:  client.Page[string]{Records: []string{"a", "b"}},
		count: 57,
	}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	res := waitResult(t, ctrl)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Records) != 2 {
		t.Errorf("records = %v", res.Records)
	}
	if !res.TotalKnown || res.TotalCount != 57 {
		t.Errorf("total = (%d, %v), want (57, true)", res.TotalCount, res.TotalKnown)
	}
}

func TestRefresh_CursorModeParams(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}}
	ctrl := NewController[string](f, WithPageSize(10))
	defer ctrl.Close()

	ctrl.Refresh()
	waitResult(t, ctrl)

	calls := f.listCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 list call, got %d", len(calls))
	}
	if got := calls[0].Get("page_size"); got != "10" {
		t.Errorf("page_size = %q, want 10", got)
	}
	if _, ok := calls[0]["limit"]; ok {
		t.Error("cursor mode must not send limit")
	}
}

func TestRefresh_CountParamsCarryNoPagination(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}, count: 3}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.SetFilter(stubFilter{{Name: "stage", Value: "lead"}})
	// Bypass the debounce for a deterministic single cycle.
	ctrl.Refresh()
	waitResult(t, ctrl)

	f.mu.Lock()
	defer f.mu.Unlock()
	last := f.countParams[len(f.countParams)-1]
	for _, key := range []string{"page_size", "cursor", "limit", "offset", "ordering"} {
		if _, ok := last[key]; ok {
			t.Errorf("count params must not carry %q: %v", key, last)
		}
	}
}

func TestDebounce_CollapsesRapidEdits(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}}
	ctrl := NewController[string](f, WithDebounce(40*time.Millisecond))
	defer ctrl.Close()

	ctrl.SetSearch("c")
	ctrl.SetSearch("ce")
	ctrl.SetSearch("ceo")
	if !ctrl.IsSearching() {
		t.Error("edits inside the debounce window should report searching")
	}
	waitResult(t, ctrl)

	calls := f.listCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 fetch for 3 rapid edits, got %d", len(calls))
	}
	if got := calls[0].Get("search"); got != "ceo" {
		t.Errorf("search = %q, want the final term", got)
	}
	if ctrl.IsSearching() {
		t.Error("searching should clear once the debounced fetch fires")
	}
}

func TestDebounce_SearchAndFilterIndependent(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}}
	ctrl := NewController[string](f, WithDebounce(40*time.Millisecond))
	defer ctrl.Close()

	ctrl.SetFilter(stubFilter{{Name: "stage", Value: "lead"}})
	time.Sleep(25 * time.Millisecond)
	// A search edit must not push back the already-ticking filter timer.
	ctrl.SetSearch("ceo")
	waitResult(t, ctrl)

	calls := f.listCalls()
	if got := calls[0].Get("stage"); got != "lead" {
		t.Errorf("first fetch should carry the filter, got %v", calls[0])
	}
}

func TestCountCache_ReusedAcrossPages(t *testing.T) {
	f := &fakeFetcher{
		page:  client.Page[string]{NextCursor: "tok"},
		count: 99,
	}
	ctrl := NewController[string](f, WithCountCache(countcache.New()))
	defer ctrl.Close()

	ctrl.Refresh()
	waitResult(t, ctrl)
	if !ctrl.NextPage() {
		t.Fatal("expected a next page after a cursor was published")
	}
	waitResult(t, ctrl)

	if got := f.countCalls(); got != 1 {
		t.Errorf("paging within one filter set should count once, got %d calls", got)
	}
	if got := len(f.listCalls()); got != 2 {
		t.Errorf("expected 2 list calls, got %d", got)
	}
}

func TestCountCache_InvalidateForcesRecount(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}, count: 5}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	waitResult(t, ctrl)
	ctrl.InvalidateCounts()
	ctrl.Refresh()
	waitResult(t, ctrl)

	if got := f.countCalls(); got != 2 {
		t.Errorf("expected a recount after invalidation, got %d calls", got)
	}
}

func TestCountFallback_EnvelopeTotal(t *testing.T) {
	f := &fakeFetcher{
		page:     client.Page[string]{Records: []string{"a"}, Count: 80, HasCount: true},
		countErr: errors.New("count endpoint down"),
	}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	res := waitResult(t, ctrl)
	if res.Err != nil {
		t.Fatalf("a count failure must not fail the cycle: %v", res.Err)
	}
	if !res.TotalKnown || res.TotalCount != 80 {
		t.Errorf("total = (%d, %v), want the envelope's 80", res.TotalCount, res.TotalKnown)
	}
}

func TestCountFallback_Unknown(t *testing.T) {
	f := &fakeFetcher{
		page:     client.Page[string]{Records: []string{"a"}},
		countErr: errors.New("count endpoint down"),
	}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	res := waitResult(t, ctrl)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.TotalKnown {
		t.Error("no count source at all must yield TotalKnown=false, not a fake zero")
	}
	if len(res.Records) != 1 {
		t.Error("records must still be delivered without a total")
	}
}

func TestListError_Published(t *testing.T) {
	f := &fakeFetcher{listErr: errors.New("boom")}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	res := waitResult(t, ctrl)
	if res.Err == nil {
		t.Fatal("expected the list error to be published")
	}
	if len(res.Records) != 0 || res.TotalKnown {
		t.Error("a failed cycle must degrade to empty")
	}
}

func TestSequenceGuard_StaleCycleDiscarded(t *testing.T) {
	gate := make(chan struct{})
	first := true
	var mu sync.Mutex
	f := &gatedFetcher{gate: gate, firstCall: &first, mu: &mu}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh() // cycle 1 blocks in List
	time.Sleep(20 * time.Millisecond)
	ctrl.Refresh() // cycle 2 supersedes it
	res := waitResult(t, ctrl)
	if len(res.Records) != 1 || res.Records[0] != "fresh" {
		t.Fatalf("expected the fresh cycle's records, got %v", res.Records)
	}

	close(gate) // let cycle 1 finish late
	time.Sleep(50 * time.Millisecond)
	final := ctrl.Result()
	if len(final.Records) != 1 || final.Records[0] != "fresh" {
		t.Errorf("stale cycle overwrote the result: %v", final.Records)
	}
}

// gatedFetcher blocks its first List call until gate closes (or the cycle
// is canceled) and answers "stale"; later calls answer "fresh" at once.
type gatedFetcher struct {
	gate      chan struct{}
	firstCall *bool
	mu        *sync.Mutex
}

func (f *gatedFetcher) List(ctx context.Context, params url.Values) (*client.Page[string], error) {
	f.mu.Lock()
	isFirst := *f.firstCall
	*f.firstCall = false
	f.mu.Unlock()
	if isFirst {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return &client.Page[string]{Records: []string{"stale"}}, nil
	}
	return &client.Page[string]{Records: []string{"fresh"}}, nil
}

func (f *gatedFetcher) Count(ctx context.Context, params url.Values) (int, error) {
	return 1, nil
}

func TestSortBy_SwitchesToOffsetMode(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}}
	ctrl := NewController[string](f, WithPageSize(25))
	defer ctrl.Close()

	ctrl.SortBy("name")
	waitResult(t, ctrl)

	calls := f.listCalls()
	last := calls[len(calls)-1]
	if got := last.Get("ordering"); got != "name" {
		t.Errorf("ordering = %q, want name", got)
	}
	if got := last.Get("limit"); got != "25" {
		t.Errorf("limit = %q, want 25", got)
	}
	if _, ok := last["page_size"]; ok {
		t.Error("offset mode must not send page_size")
	}
}

func TestSortBy_ToggleFlipsDirection(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.SortBy("name")
	waitResult(t, ctrl)
	ctrl.SortBy("name")
	waitResult(t, ctrl)

	calls := f.listCalls()
	last := calls[len(calls)-1]
	if got := last.Get("ordering"); got != "-name" {
		t.Errorf("ordering = %q, want -name", got)
	}
}

func TestModeTransition_ResetsPosition(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{NextCursor: "tok"}}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	waitResult(t, ctrl)
	ctrl.NextPage() // cursor position accumulated
	waitResult(t, ctrl)

	ctrl.SortBy("name") // switch to offset mode
	waitResult(t, ctrl)

	calls := f.listCalls()
	last := calls[len(calls)-1]
	if got := last.Get("offset"); got != "0" {
		t.Errorf("offset after mode switch = %q, want 0", got)
	}
	if _, ok := last["cursor"]; ok {
		t.Error("cursor position must not leak into offset mode")
	}

	ctrl.ClearSort() // back to cursor mode
	waitResult(t, ctrl)
	calls = f.listCalls()
	last = calls[len(calls)-1]
	if _, ok := last["cursor"]; ok {
		t.Error("position must reset on the return transition too")
	}
}

func TestNextPage_RequiresCursor(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{}} // no next cursor
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	waitResult(t, ctrl)
	if ctrl.NextPage() {
		t.Error("no next cursor means no next page")
	}
	if got := len(f.listCalls()); got != 1 {
		t.Errorf("a refused page turn must not fetch, got %d calls", got)
	}
}

func TestNextPage_SendsCursor(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{NextCursor: "abc123"}}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	ctrl.Refresh()
	waitResult(t, ctrl)
	if !ctrl.NextPage() {
		t.Fatal("expected a next page")
	}
	waitResult(t, ctrl)

	calls := f.listCalls()
	last := calls[len(calls)-1]
	if got := last.Get("cursor"); got != "abc123" {
		t.Errorf("cursor = %q, want abc123", got)
	}
}

func TestUpdates_KeepsLatestOnly(t *testing.T) {
	f := &fakeFetcher{page: client.Page[string]{Records: []string{"x"}}, count: 1}
	ctrl := NewController[string](f)
	defer ctrl.Close()

	// Publish twice without reading; the channel must hold the newer one.
	ctrl.Refresh()
	time.Sleep(50 * time.Millisecond)
	f.mu.Lock()
	f.page.Records = []string{"y"}
	f.mu.Unlock()
	ctrl.Refresh()
	time.Sleep(50 * time.Millisecond)

	res := waitResult(t, ctrl)
	if len(res.Records) != 1 || res.Records[0] != "y" {
		t.Errorf("expected the latest result, got %v", res.Records)
	}
	select {
	case extra := <-ctrl.Updates():
		t.Errorf("no backlog expected, got %v", extra.Records)
	default:
	}
}
