// Package pager owns the pagination and filter state of the workflow list.
//
// The remote API only exposes a forward cursor, so backward navigation is
// re-derived from an explicit history of request locators: each successful
// page push appends the locator that produced it, and going back pops the
// current page's locator and re-issues the previous one.
package pager

import (
	"context"
	"sync"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/store"
)

// Fetcher is the seam to the fetch client. Network side effects stay behind
// it so transitions are testable without a remote.
type Fetcher interface {
	FetchPage(ctx context.Context, sort store.SortSpec, filter store.FilterSet, locator string) (*store.Page, error)
}

// Pager is the pagination/filter state controller.
//
// Invariants:
//   - len(stack) == page whenever state is consistent
//   - state only mutates after a fetch resolves; a failed fetch leaves
//     page, stack and next untouched
//   - at most one fetch is outstanding; triggers arriving while one is in
//     flight are dropped, not queued
type Pager struct {
	mu      sync.Mutex
	fetcher Fetcher

	sort    store.SortSpec
	draft   store.FilterSet
	applied store.FilterSet

	page    int
	stack   []string
	next    *string
	total   int
	records []store.Workflow

	inFlight bool
	lastErr  error
}

// New creates a pager with default sort and empty filters.
func New(f Fetcher) *Pager {
	return &Pager{fetcher: f}
}

// SetDraft stages filter edits without triggering a fetch. Drafts only take
// effect on Apply.
func (p *Pager) SetDraft(f store.FilterSet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft = f
}

// Draft returns the staged, not yet applied filters.
func (p *Pager) Draft() store.FilterSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft
}

// Apply commits the draft filters and starts a new query. It reports
// whether a fetch was started; a trigger during an in-flight fetch is
// dropped.
func (p *Pager) Apply(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return false, nil
	}
	p.inFlight = true
	sort, filter := p.sort, p.draft
	p.mu.Unlock()

	page, err := p.fetcher.FetchPage(ctx, sort, filter, "")

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		p.lastErr = err
		return true, err
	}
	p.applied = filter
	p.resetTo(page)
	return true, nil
}

// SetSort commits a new sort order and starts a new query immediately.
func (p *Pager) SetSort(ctx context.Context, sort store.SortSpec) (bool, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return false, nil
	}
	p.inFlight = true
	filter := p.applied
	p.mu.Unlock()

	page, err := p.fetcher.FetchPage(ctx, sort, filter, "")

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		p.lastErr = err
		return true, err
	}
	p.sort = sort
	p.resetTo(page)
	return true, nil
}

// Next advances one page. No-op when there is no next cursor or a fetch is
// already in flight.
func (p *Pager) Next(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.inFlight || p.next == nil {
		p.mu.Unlock()
		return false, nil
	}
	p.inFlight = true
	sort, filter, locator := p.sort, p.applied, *p.next
	p.mu.Unlock()

	page, err := p.fetcher.FetchPage(ctx, sort, filter, locator)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		p.lastErr = err
		return true, err
	}
	p.stack = append(p.stack, page.Locator)
	p.page++
	p.commit(page)
	return true, nil
}

// Prev retreats one page by re-issuing the previous page's locator. No-op
// on the first page or while a fetch is in flight. The stack is only popped
// after the fetch succeeds so a failure leaves navigation consistent.
func (p *Pager) Prev(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.inFlight || p.page <= 1 || len(p.stack) < 2 {
		p.mu.Unlock()
		return false, nil
	}
	p.inFlight = true
	sort, filter, locator := p.sort, p.applied, p.stack[len(p.stack)-2]
	p.mu.Unlock()

	page, err := p.fetcher.FetchPage(ctx, sort, filter, locator)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		p.lastErr = err
		return true, err
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.page--
	p.commit(page)
	return true, nil
}

// Refresh re-issues the current page's locator.
func (p *Pager) Refresh(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return false, nil
	}
	if len(p.stack) == 0 {
		p.mu.Unlock()
		return p.Apply(ctx)
	}
	p.inFlight = true
	sort, filter, locator := p.sort, p.applied, p.stack[len(p.stack)-1]
	p.mu.Unlock()

	page, err := p.fetcher.FetchPage(ctx, sort, filter, locator)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		p.lastErr = err
		return true, err
	}
	p.commit(page)
	return true, nil
}

// resetTo replaces pagination state with page 1 of a new query.
func (p *Pager) resetTo(page *store.Page) {
	p.page = 1
	p.stack = []string{page.Locator}
	p.commit(page)
}

// commit publishes a fetched page. Callers hold p.mu.
func (p *Pager) commit(page *store.Page) {
	p.records = page.Records
	p.next = page.NextLink
	p.total = page.TotalCount
	p.lastErr = nil
}

// Sort returns the committed sort spec.
func (p *Pager) Sort() store.SortSpec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sort
}

// Applied returns the committed filters driving fetches.
func (p *Pager) Applied() store.FilterSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.applied
}

// Page returns the 1-based current page number; 0 before the first fetch.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Records returns the currently displayed records.
func (p *Pager) Records() []store.Workflow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.records
}

// TotalCount returns the total matching count reported by the remote.
func (p *Pager) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// HasNext reports whether a further page exists.
func (p *Pager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.next != nil
}

// Stack returns a copy of the request locator history.
func (p *Pager) Stack() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	stack := make([]string, len(p.stack))
	copy(stack, p.stack)
	return stack
}

// InFlight reports whether a fetch is outstanding.
func (p *Pager) InFlight() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight
}

// Err returns the display error from the last failed fetch, cleared by the
// next successful one.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
