package ports

import "context"

// BusyChange is emitted when a tracked action starts or finishes.
type BusyChange struct {
	Key  string
	Busy bool
}

// ActionTracker is a keyed registry of in-flight named operations. A key is
// busy strictly between the start of Run and its return, on both the success
// and error paths. A second Run under a busy key is rejected with
// domain.ErrActionInFlight rather than racing the first.
type ActionTracker interface {
	Run(ctx context.Context, key string, fn func(context.Context) error) error
	IsBusy(key string) bool
	// BusyKeys returns the keys currently in flight, sorted.
	BusyKeys() []string
	Subscribe(fn func(BusyChange)) (unsubscribe func())
}
