package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

const defaultConfirmationTTL = 5 * time.Minute

// Confirmer gates destructive actions behind a single pending confirmation.
// A second request while one is open is rejected. Pending requests expire
// after a TTL so an abandoned prompt cannot wedge the gate.
type Confirmer struct {
	clock ports.Clock
	log   zerolog.Logger
	ttl   time.Duration

	mu      sync.Mutex
	pending *domain.Confirmation
	action  func(context.Context) error
}

func NewConfirmer(clock ports.Clock, log zerolog.Logger, ttl time.Duration) *Confirmer {
	if ttl <= 0 {
		ttl = defaultConfirmationTTL
	}
	return &Confirmer{clock: clock, log: log, ttl: ttl}
}

// Request parks action behind a new confirmation.
func (c *Confirmer) Request(ctx context.Context, req ports.ConfirmationRequest, action func(context.Context) error) (*domain.Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked()
	if c.pending != nil {
		return nil, domain.ErrConfirmationPending
	}

	severity := req.Severity
	if severity == "" {
		severity = domain.SeverityWarning
	}
	now := c.clock.Now()
	conf := &domain.Confirmation{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Title:        req.Title,
		Message:      req.Message,
		ConfirmLabel: req.ConfirmLabel,
		CancelLabel:  req.CancelLabel,
		Severity:     severity,
		CreatedAt:    now,
		ExpiresAt:    now.Add(c.ttl),
	}
	c.pending = conf
	c.action = action

	out := *conf
	return &out, nil
}

// Confirm runs the parked action exactly once and returns the gate to idle.
// The action's error is passed through to the caller.
func (c *Confirmer) Confirm(ctx context.Context, userID, id string) error {
	action, err := c.take(userID, id)
	if err != nil {
		return err
	}
	return action(ctx)
}

// Cancel discards the parked action without running it.
func (c *Confirmer) Cancel(ctx context.Context, userID, id string) error {
	_, err := c.take(userID, id)
	return err
}

// Pending returns a copy of the open request owned by userID. Requests
// belonging to other users are invisible, so a pending id never leaks.
func (c *Confirmer) Pending(userID string) *domain.Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireLocked()
	if c.pending == nil || c.pending.UserID != userID {
		return nil
	}
	out := *c.pending
	return &out
}

func (c *Confirmer) State() domain.ConfirmationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireLocked()
	if c.pending != nil {
		return domain.ConfirmationPending
	}
	return domain.ConfirmationIdle
}

// take removes the pending entry matching id and returns its action. Only the
// user who parked the action may take it; anyone else gets ErrForbidden and
// the request stays pending.
func (c *Confirmer) take(userID, id string) (func(context.Context) error, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked()
	if c.pending == nil {
		return nil, domain.ErrConfirmationNotFound
	}
	if c.pending.ID != id {
		return nil, domain.ErrConfirmationMismatch
	}
	if c.pending.UserID != userID {
		return nil, domain.ErrForbidden
	}
	action := c.action
	c.pending = nil
	c.action = nil
	return action, nil
}

func (c *Confirmer) expireLocked() {
	if c.pending != nil && c.clock.Now().After(c.pending.ExpiresAt) {
		c.log.Debug().Str("confirmation_id", c.pending.ID).Msg("pending confirmation expired")
		c.pending = nil
		c.action = nil
	}
}
