package ports

import (
	"context"

	"github.com/younivent/platform/internal/core/domain"
)

// ConfirmationRequest carries the prompt copy for a two-phase action.
type ConfirmationRequest struct {
	UserID       string
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Severity     domain.Severity
}

// Confirmer is the single-flight confirmation gate. Request parks an action
// until the user confirms or cancels; at most one request may be pending at
// a time and a second Request is rejected with domain.ErrConfirmationPending.
// The parked action belongs to the user who requested it: only that user can
// see, confirm, or cancel it.
type Confirmer interface {
	Request(ctx context.Context, req ConfirmationRequest, action func(context.Context) error) (*domain.Confirmation, error)
	// Confirm runs the parked action exactly once and returns the gate to
	// idle. A caller other than the requesting user gets domain.ErrForbidden.
	Confirm(ctx context.Context, userID, id string) error
	// Cancel discards the parked action without running it. Same ownership
	// rule as Confirm.
	Cancel(ctx context.Context, userID, id string) error
	// Pending returns the open request owned by userID, or nil when the gate
	// is idle or the request belongs to someone else.
	Pending(userID string) *domain.Confirmation
	State() domain.ConfirmationState
}
