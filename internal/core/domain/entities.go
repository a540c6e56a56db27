package domain

import "time"

// Entity statuses shared across the tenant tables.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
	StatusPending   = "pending"
)

// ClientAdmin is a tenant owner operating a white-label installation.
type ClientAdmin struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CompanyName string    `json:"company_name" bson:"company_name"`
	ContactName string    `json:"contact_name" bson:"contact_name"`
	Email       string    `json:"email" bson:"email"`
	Plan        string    `json:"plan" bson:"plan"`
	Status      string    `json:"status" bson:"status"`
	EventCount  int       `json:"event_count" bson:"event_count"`
	Revenue     float64   `json:"revenue" bson:"revenue"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Provider offers services (venues, catering, AV) to events on a tenant.
type Provider struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Category  string    `json:"category" bson:"category"`
	TenantID  string    `json:"tenant_id" bson:"tenant_id"`
	Rating    float64   `json:"rating" bson:"rating"`
	Bookings  int       `json:"bookings" bson:"bookings"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Customer is an attendee account on a tenant.
type Customer struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	TenantID   string    `json:"tenant_id" bson:"tenant_id"`
	Tickets    int       `json:"tickets" bson:"tickets"`
	TotalSpent float64   `json:"total_spent" bson:"total_spent"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// ProductPlan is a subscription tier offered to client admins.
type ProductPlan struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	Name         string   `json:"name" bson:"name"`
	PriceMonthly float64  `json:"price_monthly" bson:"price_monthly"`
	PriceYearly  float64  `json:"price_yearly" bson:"price_yearly"`
	EventLimit   int      `json:"event_limit" bson:"event_limit"`
	Features     []string `json:"features" bson:"features"`
	Status       string   `json:"status" bson:"status"`
}

// PaymentGateway is a configured payment processor for a tenant.
type PaymentGateway struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Provider  string    `json:"provider" bson:"provider"`
	TenantID  string    `json:"tenant_id" bson:"tenant_id"`
	Mode      string    `json:"mode" bson:"mode"` // "test" or "live"
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Transaction records a single payment.
type Transaction struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	TenantID   string    `json:"tenant_id" bson:"tenant_id"`
	CustomerID string    `json:"customer_id" bson:"customer_id"`
	EventID    string    `json:"event_id" bson:"event_id"`
	Amount     float64   `json:"amount" bson:"amount"`
	Currency   string    `json:"currency" bson:"currency"`
	Gateway    string    `json:"gateway" bson:"gateway"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Event is a bookable event hosted on a tenant.
type Event struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	TenantID    string    `json:"tenant_id" bson:"tenant_id"`
	Name        string    `json:"name" bson:"name"`
	Venue       string    `json:"venue" bson:"venue"`
	StartsAt    time.Time `json:"starts_at" bson:"starts_at"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	TicketsSold int       `json:"tickets_sold" bson:"tickets_sold"`
	TicketPrice float64   `json:"ticket_price" bson:"ticket_price"`
	Status      string    `json:"status" bson:"status"`
}

// Remaining returns the number of unsold seats.
func (e *Event) Remaining() int {
	return e.Capacity - e.TicketsSold
}
