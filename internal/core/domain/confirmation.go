package domain

import "time"

// Severity classifies a confirmation prompt.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// ConfirmationState tracks the broker's single-flight gate.
type ConfirmationState string

const (
	ConfirmationIdle    ConfirmationState = "idle"
	ConfirmationPending ConfirmationState = "pending"
)

// Confirmation describes a pending two-phase action awaiting user approval.
// At most one may be pending at a time.
type Confirmation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ConfirmLabel string    `json:"confirm_label"`
	CancelLabel  string    `json:"cancel_label"`
	Severity     Severity  `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}
