package moderation

import (
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// Command is a reviewer decision.
type Command string

const (
	CommandApprove Command = "approve"
	CommandReject  Command = "reject"
)

// ErrNotQueued means the item is not in the local view.
var ErrNotQueued = errors.New("item is not in the queue")

// Reviewer sends decisions to the API. *Client implements it.
type Reviewer interface {
	List(ctx context.Context, kind, status string, limit int) ([]Item, error)
	Approve(ctx context.Context, kind string, id int64) error
	Reject(ctx context.Context, kind string, id int64) error
}

// Queue is the local view of pending items. Decisions remove the item at once
// and put it back at its old position if the API refuses for a transient reason.
type Queue struct {
	reviewer Reviewer

	mu           sync.Mutex
	items        []Item
	needsRefresh bool
}

// tentative is a removal that can still be undone.
type tentative struct {
	item  Item
	index int
}

// NewQueue creates an empty queue
func NewQueue(reviewer Reviewer) *Queue {
	return &Queue{reviewer: reviewer}
}

// Refresh reloads pending items of the given kinds, in kind order.
func (q *Queue) Refresh(ctx context.Context, limit int, kinds ...string) error {
	var items []Item
	for _, kind := range kinds {
		page, err := q.reviewer.List(ctx, kind, "pending", limit)
		if err != nil {
			return errors.Wrapf(err, "list %s", kind)
		}
		items = append(items, page...)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = items
	q.needsRefresh = false

	return nil
}

// Track appends items known from elsewhere to the view.
func (q *Queue) Track(items ...Item) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, items...)
}

// Items returns a copy of the current view.
func (q *Queue) Items() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.items)
}

// NeedsRefresh reports whether the view is known to be stale.
func (q *Queue) NeedsRefresh() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.needsRefresh
}

// Act applies cmd to the item with the given id.
//
// ErrAlreadyReviewed and ErrNotFound leave the item removed and mark the view
// stale; any other failure restores the item.
func (q *Queue) Act(ctx context.Context, id int64, cmd Command) error {
	pending, err := q.apply(id)
	if err != nil {
		return err
	}

	err = q.send(ctx, pending.item, cmd)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrAlreadyReviewed) || errors.Is(err, ErrNotFound) {
		q.mu.Lock()
		q.needsRefresh = true
		q.mu.Unlock()

		return err
	}

	q.undo(pending)

	return err
}

func (q *Queue) apply(id int64) (*tentative, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	index := slices.IndexFunc(q.items, func(it Item) bool { return it.ID == id })
	if index < 0 {
		return nil, errors.Wrapf(ErrNotQueued, "id %d", id)
	}

	pending := &tentative{item: q.items[index], index: index}
	q.items = slices.Delete(q.items, index, index+1)

	return pending, nil
}

// undo reinserts the item, clamped to the current length when other
// decisions shrank the view meanwhile.
func (q *Queue) undo(pending *tentative) {
	q.mu.Lock()
	defer q.mu.Unlock()

	index := min(pending.index, len(q.items))
	q.items = slices.Insert(q.items, index, pending.item)
}

func (q *Queue) send(ctx context.Context, item Item, cmd Command) error {
	switch cmd {
	case CommandApprove:
		return q.reviewer.Approve(ctx, item.Kind, item.ID)
	case CommandReject:
		return q.reviewer.Reject(ctx, item.Kind, item.ID)
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
}
