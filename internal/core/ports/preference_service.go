package ports

import (
	"context"

	"github.com/younivent/platform/internal/core/domain"
)

// PreferenceService stores and retrieves per-user display settings. Reads
// fall back to hard-coded defaults when nothing is persisted or the persisted
// copy fails to parse; writes are synchronous and durable.
type PreferenceService interface {
	Currency(ctx context.Context, userID string) domain.CurrencySettings
	SetCurrency(ctx context.Context, userID string, cs domain.CurrencySettings) error

	Language(ctx context.Context, userID string) domain.Language
	SetLanguage(ctx context.Context, userID string, lang domain.Language) error

	Period(ctx context.Context, userID string) domain.Period
	SetPeriod(ctx context.Context, userID string, p domain.Period) error

	Theme(ctx context.Context, userID string) domain.Theme
	SetTheme(ctx context.Context, userID string, t domain.Theme) error

	// FormatCurrency renders amount using the user's currency settings.
	FormatCurrency(ctx context.Context, userID string, amount float64) string

	// Subscribe registers a listener invoked after every successful write.
	// The returned function unregisters it.
	Subscribe(fn func(domain.PreferenceChange)) (unsubscribe func())
}
