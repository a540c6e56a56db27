package ports

import (
	"context"

	"github.com/younivent/platform/internal/core/domain"
)

// UserRepository looks up platform accounts.
type UserRepository interface {
	// FindByEmail matches on the normalised (lower-cased, trimmed) email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// ClientRepository manages the client-admin table.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.ClientAdmin, error)
	FindByID(ctx context.Context, id string) (*domain.ClientAdmin, error)
	// SetStatus flips the stored status and returns the updated record.
	SetStatus(ctx context.Context, id, status string) (*domain.ClientAdmin, error)
	Delete(ctx context.Context, id string) error
}

// ProviderRepository reads the provider table.
type ProviderRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Provider, error)
}

// CustomerRepository reads the customer table.
type CustomerRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Customer, error)
}

// PlanRepository reads the product-plan table.
type PlanRepository interface {
	List(ctx context.Context) ([]domain.ProductPlan, error)
}

// GatewayRepository manages configured payment gateways.
type GatewayRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.PaymentGateway, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepository reads the transaction table.
type TransactionRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Transaction, error)
}

// EventRepository reads the event table.
type EventRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Event, error)
}

// Repositories bundles every table behind one handle so wiring stays flat.
type Repositories struct {
	Users        UserRepository
	Clients      ClientRepository
	Providers    ProviderRepository
	Customers    CustomerRepository
	Plans        PlanRepository
	Gateways     GatewayRepository
	Transactions TransactionRepository
	Events       EventRepository
}
