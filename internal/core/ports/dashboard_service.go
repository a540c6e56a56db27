package ports

import (
	"context"

	"github.com/younivent/platform/internal/core/domain"
)

// DashboardService composes the role-specific dashboard document from the
// entity tables and the caller's preferences. Composition is a pure read:
// no state transitions of its own.
type DashboardService interface {
	Compose(ctx context.Context, user *domain.User) (*domain.DashboardView, error)
}
