package service

import (
	"context"
	"sort"
	"sync"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

// Tracker is the keyed in-flight action registry. A key is busy strictly
// between the start of Run and its return, cleared on success and error
// alike. A second Run under a busy key is rejected with ErrActionInFlight
// instead of racing the first.
type Tracker struct {
	mu      sync.Mutex
	busy    map[string]bool
	subs    map[int]func(ports.BusyChange)
	nextSub int
}

func NewTracker() *Tracker {
	return &Tracker{
		busy: make(map[string]bool),
		subs: make(map[int]func(ports.BusyChange)),
	}
}

// Run executes fn under key. The busy flag is cleared on every return path.
func (t *Tracker) Run(ctx context.Context, key string, fn func(context.Context) error) error {
	t.mu.Lock()
	if t.busy[key] {
		t.mu.Unlock()
		return domain.ErrActionInFlight
	}
	t.busy[key] = true
	t.mu.Unlock()
	t.notify(ports.BusyChange{Key: key, Busy: true})

	defer func() {
		t.mu.Lock()
		delete(t.busy, key)
		t.mu.Unlock()
		t.notify(ports.BusyChange{Key: key, Busy: false})
	}()

	return fn(ctx)
}

// IsBusy reports whether key is in flight. Absent keys are not busy.
func (t *Tracker) IsBusy(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy[key]
}

// BusyKeys returns the in-flight keys, sorted.
func (t *Tracker) BusyKeys() []string {
	t.mu.Lock()
	keys := make([]string, 0, len(t.busy))
	for k := range t.busy {
		keys = append(keys, k)
	}
	t.mu.Unlock()
	sort.Strings(keys)
	return keys
}

func (t *Tracker) Subscribe(fn func(ports.BusyChange)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

func (t *Tracker) notify(change ports.BusyChange) {
	t.mu.Lock()
	fns := make([]func(ports.BusyChange), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()
	for _, fn := range fns {
		fn(change)
	}
}
