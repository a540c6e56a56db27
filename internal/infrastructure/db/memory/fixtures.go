package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/younivent/platform/internal/core/domain"
)

// DemoPassword is the single shared password for every seeded account. The
// platform ships with mock credentials only; there is no registration flow.
const DemoPassword = "younivent123"

// DemoTenant is the tenant id all tenant-scoped fixtures belong to.
const DemoTenant = "t-eventcorp"

var fixtureEpoch = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func demoHash() string {
	// MinCost keeps seeding fast; these are throwaway demo credentials.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// SeedUsers returns the static login table, one account per role.
func SeedUsers() []domain.User {
	hash := demoHash()
	return []domain.User{
		{ID: "u-1", Name: "Ava Torres", Email: "admin@younivent.com", PasswordHash: hash, Role: domain.RoleSuperAdmin, Status: domain.StatusActive, CreatedAt: fixtureEpoch},
		{ID: "u-2", Name: "Sarah Lindqvist", Email: "sarah@eventcorp.com", PasswordHash: hash, Role: domain.RoleClientAdmin, Status: domain.StatusActive, TenantID: DemoTenant, CreatedAt: fixtureEpoch.AddDate(0, 0, 3)},
		{ID: "u-3", Name: "Mike Okafor", Email: "mike@soundwave.io", PasswordHash: hash, Role: domain.RoleProvider, Status: domain.StatusActive, TenantID: DemoTenant, CreatedAt: fixtureEpoch.AddDate(0, 0, 5)},
		{ID: "u-4", Name: "Lisa Moreau", Email: "lisa@eventcorp.com", PasswordHash: hash, Role: domain.RoleSubAdmin, Status: domain.StatusActive, TenantID: DemoTenant, CreatedAt: fixtureEpoch.AddDate(0, 0, 8)},
		{ID: "u-5", Name: "John Becker", Email: "john@gmail.com", PasswordHash: hash, Role: domain.RoleCustomer, Status: domain.StatusActive, TenantID: DemoTenant, CreatedAt: fixtureEpoch.AddDate(0, 1, 0)},
	}
}

func seedClients() []domain.ClientAdmin {
	return []domain.ClientAdmin{
		{ID: "c-1", CompanyName: "EventCorp", ContactName: "Sarah Lindqvist", Email: "sarah@eventcorp.com", Plan: "Enterprise", Status: domain.StatusActive, EventCount: 24, Revenue: 48250, CreatedAt: fixtureEpoch},
		{ID: "c-2", CompanyName: "Festiva Group", ContactName: "Omar Haddad", Email: "omar@festiva.example", Plan: "Pro", Status: domain.StatusActive, EventCount: 11, Revenue: 17900, CreatedAt: fixtureEpoch.AddDate(0, 0, 12)},
		{ID: "c-3", CompanyName: "Local Meetups Ltd", ContactName: "Petra Novak", Email: "petra@meetups.example", Plan: "Starter", Status: domain.StatusSuspended, EventCount: 3, Revenue: 1240, CreatedAt: fixtureEpoch.AddDate(0, 1, 2)},
	}
}

func seedProviders() []domain.Provider {
	return []domain.Provider{
		{ID: "p-1", Name: "Soundwave AV", Email: "mike@soundwave.io", Category: "audio_visual", TenantID: DemoTenant, Rating: 4.8, Bookings: 37, Status: domain.StatusActive, CreatedAt: fixtureEpoch},
		{ID: "p-2", Name: "Gourmet on Wheels", Email: "chef@gourmetwheels.example", Category: "catering", TenantID: DemoTenant, Rating: 4.5, Bookings: 22, Status: domain.StatusActive, CreatedAt: fixtureEpoch.AddDate(0, 0, 7)},
		{ID: "p-3", Name: "Grand Hall Venues", Email: "book@grandhall.example", Category: "venue", TenantID: DemoTenant, Rating: 4.2, Bookings: 9, Status: domain.StatusPending, CreatedAt: fixtureEpoch.AddDate(0, 0, 20)},
	}
}

func seedCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "cu-1", Name: "John Becker", Email: "john@gmail.com", TenantID: DemoTenant, Tickets: 6, TotalSpent: 412.5, Status: domain.StatusActive, CreatedAt: fixtureEpoch.AddDate(0, 1, 0)},
		{ID: "cu-2", Name: "Mei Chen", Email: "mei.chen@example.com", TenantID: DemoTenant, Tickets: 2, TotalSpent: 98, Status: domain.StatusActive, CreatedAt: fixtureEpoch.AddDate(0, 1, 4)},
		{ID: "cu-3", Name: "Tomás Rivera", Email: "tomas.r@example.com", TenantID: DemoTenant, Tickets: 11, TotalSpent: 890, Status: domain.StatusInactive, CreatedAt: fixtureEpoch.AddDate(0, 1, 9)},
	}
}

func seedPlans() []domain.ProductPlan {
	return []domain.ProductPlan{
		{ID: "pl-1", Name: "Starter", PriceMonthly: 29, PriceYearly: 290, EventLimit: 5, Features: []string{"basic_dashboard", "email_support"}, Status: domain.StatusActive},
		{ID: "pl-2", Name: "Pro", PriceMonthly: 99, PriceYearly: 990, EventLimit: 25, Features: []string{"basic_dashboard", "custom_branding", "priority_support"}, Status: domain.StatusActive},
		{ID: "pl-3", Name: "Enterprise", PriceMonthly: 299, PriceYearly: 2990, EventLimit: 0, Features: []string{"white_label", "sla", "dedicated_support"}, Status: domain.StatusActive},
	}
}

func seedGateways() []domain.PaymentGateway {
	return []domain.PaymentGateway{
		{ID: "g-1", Name: "Main Stripe", Provider: "stripe", TenantID: DemoTenant, Mode: "live", Status: domain.StatusActive, CreatedAt: fixtureEpoch},
		{ID: "g-2", Name: "PayPal Backup", Provider: "paypal", TenantID: DemoTenant, Mode: "test", Status: domain.StatusInactive, CreatedAt: fixtureEpoch.AddDate(0, 0, 15)},
	}
}

func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "tx-1", TenantID: DemoTenant, CustomerID: "cu-1", EventID: "e-1", Amount: 150, Currency: "USD", Gateway: "stripe", Status: "completed", CreatedAt: fixtureEpoch.AddDate(0, 1, 10)},
		{ID: "tx-2", TenantID: DemoTenant, CustomerID: "cu-2", EventID: "e-1", Amount: 49, Currency: "USD", Gateway: "stripe", Status: "completed", CreatedAt: fixtureEpoch.AddDate(0, 1, 11)},
		{ID: "tx-3", TenantID: DemoTenant, CustomerID: "cu-3", EventID: "e-2", Amount: 220, Currency: "USD", Gateway: "paypal", Status: "refunded", CreatedAt: fixtureEpoch.AddDate(0, 1, 15)},
		{ID: "tx-4", TenantID: DemoTenant, CustomerID: "cu-1", EventID: "e-3", Amount: 75, Currency: "USD", Gateway: "stripe", Status: "completed", CreatedAt: fixtureEpoch.AddDate(0, 1, 20)},
	}
}

func seedEvents() []domain.Event {
	return []domain.Event{
		{ID: "e-1", TenantID: DemoTenant, Name: "Spring Tech Summit", Venue: "Grand Hall", StartsAt: fixtureEpoch.AddDate(0, 2, 0), Capacity: 500, TicketsSold: 342, TicketPrice: 150, Status: domain.StatusActive},
		{ID: "e-2", TenantID: DemoTenant, Name: "Jazz by the River", Venue: "Riverside Stage", StartsAt: fixtureEpoch.AddDate(0, 2, 14), Capacity: 1200, TicketsSold: 1180, TicketPrice: 49, Status: domain.StatusActive},
		{ID: "e-3", TenantID: DemoTenant, Name: "Founders Dinner", Venue: "Skyline Loft", StartsAt: fixtureEpoch.AddDate(0, 3, 2), Capacity: 80, TicketsSold: 80, TicketPrice: 220, Status: domain.StatusPending},
	}
}
