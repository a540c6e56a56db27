package domain

import "time"

// NotificationCategory tags a toast-style notification.
type NotificationCategory string

const (
	NotifySuccess NotificationCategory = "success"
	NotifyError   NotificationCategory = "error"
	NotifyInfo    NotificationCategory = "info"
)

// Notification is a fire-and-forget message shown to a user until it expires
// or is dismissed. Insertion order is display order; duplicates may coexist.
type Notification struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Category  NotificationCategory `json:"category"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
	ExpiresAt time.Time            `json:"expires_at"`
}
