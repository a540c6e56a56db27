package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/younivent/platform/internal/api/metrics"
	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

const defaultDisplayTTL = 5 * time.Second

// Broadcaster is the toast notification fan-out. Entries expire after a fixed
// display duration or on explicit dismissal; expiry is evaluated lazily
// against the injected clock so tests stay deterministic.
type Broadcaster struct {
	clock ports.Clock
	ttl   time.Duration

	mu      sync.Mutex
	items   map[string][]domain.Notification
	subs    map[int]func(domain.Notification)
	nextSub int
}

func NewBroadcaster(clock ports.Clock, ttl time.Duration) *Broadcaster {
	if ttl <= 0 {
		ttl = defaultDisplayTTL
	}
	return &Broadcaster{
		clock: clock,
		ttl:   ttl,
		items: make(map[string][]domain.Notification),
		subs:  make(map[int]func(domain.Notification)),
	}
}

func (b *Broadcaster) Success(userID, title, message string) domain.Notification {
	return b.push(userID, domain.NotifySuccess, title, message)
}

func (b *Broadcaster) Error(userID, title, message string) domain.Notification {
	return b.push(userID, domain.NotifyError, title, message)
}

func (b *Broadcaster) Info(userID, title, message string) domain.Notification {
	return b.push(userID, domain.NotifyInfo, title, message)
}

// Active returns the live notifications for userID in insertion order,
// pruning anything past its expiry.
func (b *Broadcaster) Active(userID string) []domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	live := b.items[userID][:0]
	for _, n := range b.items[userID] {
		if now.Before(n.ExpiresAt) {
			live = append(live, n)
		}
	}
	b.items[userID] = live

	out := make([]domain.Notification, len(live))
	copy(out, live)
	return out
}

// Dismiss removes a notification before its expiry. Returns false when the
// id is unknown or already gone.
func (b *Broadcaster) Dismiss(userID, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.items[userID]
	for i, n := range list {
		if n.ID == id {
			b.items[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Broadcaster) Subscribe(fn func(domain.Notification)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *Broadcaster) push(userID string, cat domain.NotificationCategory, title, message string) domain.Notification {
	now := b.clock.Now()
	n := domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Category:  cat,
		Title:     title,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(b.ttl),
	}

	b.mu.Lock()
	b.items[userID] = append(b.items[userID], n)
	fns := make([]func(domain.Notification), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	// Counted here so every emitter is covered, not just the HTTP handlers.
	metrics.NotificationsTotal.WithLabelValues(string(cat)).Inc()

	for _, fn := range fns {
		fn(n)
	}
	return n
}
