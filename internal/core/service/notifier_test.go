package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/younivent/platform/internal/api/metrics"
	"github.com/younivent/platform/internal/core/domain"
)

func TestBroadcaster_InsertionOrder(t *testing.T) {
	b := NewBroadcaster(newFakeClock(), time.Minute)

	b.Success("u-1", "Exported", "report ready")
	b.Error("u-1", "Failed", "gateway timeout")
	b.Info("u-1", "Heads up", "maintenance tonight")

	active := b.Active("u-1")
	if len(active) != 3 {
		t.Fatalf("expected 3 active notifications, got %d", len(active))
	}
	want := []domain.NotificationCategory{domain.NotifySuccess, domain.NotifyError, domain.NotifyInfo}
	for i, cat := range want {
		if active[i].Category != cat {
			t.Fatalf("position %d: expected %s, got %s", i, cat, active[i].Category)
		}
	}
}

func TestBroadcaster_IsolatesUsers(t *testing.T) {
	b := NewBroadcaster(newFakeClock(), time.Minute)

	b.Success("u-1", "mine", "")
	b.Success("u-2", "theirs", "")

	if got := len(b.Active("u-1")); got != 1 {
		t.Fatalf("expected 1 notification for u-1, got %d", got)
	}
	if got := len(b.Active("u-3")); got != 0 {
		t.Fatalf("expected no notifications for u-3, got %d", got)
	}
}

func TestBroadcaster_ExpiresAfterTTL(t *testing.T) {
	clock := newFakeClock()
	b := NewBroadcaster(clock, 5*time.Second)

	b.Success("u-1", "first", "")
	clock.Advance(3 * time.Second)
	b.Success("u-1", "second", "")

	clock.Advance(3 * time.Second)

	active := b.Active("u-1")
	if len(active) != 1 {
		t.Fatalf("expected 1 surviving notification, got %d", len(active))
	}
	if active[0].Title != "second" {
		t.Fatalf("wrong survivor: %q", active[0].Title)
	}
}

func TestBroadcaster_Dismiss(t *testing.T) {
	b := NewBroadcaster(newFakeClock(), time.Minute)

	n := b.Success("u-1", "x", "")
	if !b.Dismiss("u-1", n.ID) {
		t.Fatalf("dismiss of live notification returned false")
	}
	if b.Dismiss("u-1", n.ID) {
		t.Fatalf("second dismiss returned true")
	}
	if got := len(b.Active("u-1")); got != 0 {
		t.Fatalf("expected no active notifications, got %d", got)
	}
}

func TestBroadcaster_CountsEveryPush(t *testing.T) {
	b := NewBroadcaster(newFakeClock(), time.Minute)

	before := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues(string(domain.NotifyInfo)))
	b.Info("u-1", "one", "")
	b.Info("u-2", "two", "")
	after := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues(string(domain.NotifyInfo)))

	if after-before != 2 {
		t.Fatalf("expected counter to grow by 2, got %v", after-before)
	}
}

func TestBroadcaster_SubscribeReceivesEveryPush(t *testing.T) {
	b := NewBroadcaster(newFakeClock(), time.Minute)

	var seen []domain.Notification
	unsubscribe := b.Subscribe(func(n domain.Notification) {
		seen = append(seen, n)
	})

	b.Success("u-1", "one", "")
	b.Error("u-2", "two", "")
	unsubscribe()
	b.Info("u-1", "three", "")

	if len(seen) != 2 {
		t.Fatalf("expected 2 deliveries before unsubscribe, got %d", len(seen))
	}
	if seen[0].Title != "one" || seen[1].Title != "two" {
		t.Fatalf("unexpected delivery order: %v", seen)
	}
}
