package ports

import "github.com/younivent/platform/internal/core/domain"

// Notifier broadcasts auto-expiring toast notifications. No de-duplication
// and no priority ordering: insertion order is display order.
type Notifier interface {
	Success(userID, title, message string) domain.Notification
	Error(userID, title, message string) domain.Notification
	Info(userID, title, message string) domain.Notification
	// Active returns the not-yet-expired notifications for a user in
	// insertion order.
	Active(userID string) []domain.Notification
	Dismiss(userID, id string) bool
	Subscribe(fn func(domain.Notification)) (unsubscribe func())
}
