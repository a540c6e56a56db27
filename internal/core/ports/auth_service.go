package ports

import (
	"context"

	"github.com/younivent/platform/internal/core/domain"
)

// AuthService implements login, logout and session resumption.
type AuthService interface {
	// Login authenticates by email and password, returning a signed token and
	// the identity on success. The identity is persisted so Resume can
	// re-hydrate it.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout discards the persisted identity.
	Logout(ctx context.Context, userID string) error
	// Resume returns the persisted identity, but only if the account still
	// exists; otherwise the stale record is discarded and ErrUserNotFound
	// returned.
	Resume(ctx context.Context, userID string) (*domain.User, error)
}
