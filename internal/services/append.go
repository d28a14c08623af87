package services

import (
	"context"
	"sync"

	"github.com/opencampus-in/studyportal-service/internal/repositories"
)

// AppendOutcome describes which branch of an upsert-append ran. All three
// outcomes are success; only the client-facing message differs.
type AppendOutcome string

const (
	OutcomeParentCreated  AppendOutcome = "parent_created"
	OutcomeChildCreated   AppendOutcome = "child_created"
	OutcomeContentUpdated AppendOutcome = "content_updated"
)

// appendHooks binds the generic upsert-append flow to a concrete parent
// document type P, child entry type C, content item type I and per-request
// extra fields E (stored only when the parent is first created).
type appendHooks[P, C, I, E any] struct {
	findParent   func(ctx context.Context, key string) (*P, error)
	createParent func(ctx context.Context, parent *P) error
	saveParent   func(ctx context.Context, parent *P) error

	// newParent builds a parent holding exactly one child entry carrying
	// the extra fields; newChild builds a bare child entry.
	newParent func(key string, childKey int, extra E, items []I) *P
	newChild  func(childKey int, items []I) C

	children    func(parent *P) []C
	setChildren func(parent *P, children []C)
	childKey    func(child C) int
	items       func(child C) []I
	setItems    func(child *C, items []I)
}

// appendEngine implements find-parent / upsert-child / append-content over a
// document store. The read-modify-write sequence is serialized per parent
// key within this process; concurrent writers in other processes can still
// race and lose updates on the whole-document save.
type appendEngine[P, C, I, E any] struct {
	hooks appendHooks[P, C, I, E]
	locks keyedMutex
}

// Apply ensures a parent document for parentKey exists, ensures a child
// entry keyed childKey exists within it, and appends newItems to that
// child's content. Content is concatenated in order with no deduplication.
// An empty newItems still persists the parent and reports success.
func (e *appendEngine[P, C, I, E]) Apply(ctx context.Context, parentKey string, childKey int, newItems []I, extra E) (AppendOutcome, error) {
	unlock := e.locks.lock(parentKey)
	defer unlock()

	parent, err := e.hooks.findParent(ctx, parentKey)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			return "", err
		}
		parent = e.hooks.newParent(parentKey, childKey, extra, newItems)
		if err := e.hooks.createParent(ctx, parent); err != nil {
			return "", err
		}
		return OutcomeParentCreated, nil
	}

	children := e.hooks.children(parent)
	for i := range children {
		if e.hooks.childKey(children[i]) != childKey {
			continue
		}
		// First match wins; duplicate keys mean the uniqueness invariant
		// was already violated upstream.
		e.hooks.setItems(&children[i], append(e.hooks.items(children[i]), newItems...))
		e.hooks.setChildren(parent, children)
		if err := e.hooks.saveParent(ctx, parent); err != nil {
			return "", err
		}
		return OutcomeContentUpdated, nil
	}

	e.hooks.setChildren(parent, append(children, e.hooks.newChild(childKey, newItems)))
	if err := e.hooks.saveParent(ctx, parent); err != nil {
		return "", err
	}
	return OutcomeChildCreated, nil
}

// keyedMutex hands out one mutex per key. Entries are never evicted; the
// key space here is the set of course names, which stays small.
type keyedMutex struct {
	mu sync.Map // string -> *sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	v, _ := k.mu.LoadOrStore(key, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
