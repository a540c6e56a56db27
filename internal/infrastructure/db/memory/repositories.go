// Package memory provides the seeded in-memory tables that stand in for a
// database. Mutations (status toggles, deletes) apply only to the in-memory
// copy and vanish on restart, which is the intended demo behaviour.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

// NewRepositories returns every table seeded with the demo fixtures.
func NewRepositories() ports.Repositories {
	return ports.Repositories{
		Users:        NewUserRepository(SeedUsers()),
		Clients:      &clientRepo{items: seedClients()},
		Providers:    &providerRepo{items: seedProviders()},
		Customers:    &customerRepo{items: seedCustomers()},
		Plans:        &planRepo{items: seedPlans()},
		Gateways:     &gatewayRepo{items: seedGateways()},
		Transactions: &transactionRepo{items: seedTransactions()},
		Events:       &eventRepo{items: seedEvents()},
	}
}

// UserRepository is the static login table.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepository(users []domain.User) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.ToLower(u.Email) == email {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type clientRepo struct {
	mu    sync.RWMutex
	items []domain.ClientAdmin
}

func (r *clientRepo) List(_ context.Context) ([]domain.ClientAdmin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ClientAdmin, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *clientRepo) FindByID(_ context.Context, id string) (*domain.ClientAdmin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *clientRepo) SetStatus(_ context.Context, id, status string) (*domain.ClientAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *clientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type providerRepo struct {
	mu    sync.RWMutex
	items []domain.Provider
}

func (r *providerRepo) List(_ context.Context, tenantID string) ([]domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Provider, 0, len(r.items))
	for _, p := range r.items {
		if tenantID == "" || p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

type customerRepo struct {
	mu    sync.RWMutex
	items []domain.Customer
}

func (r *customerRepo) List(_ context.Context, tenantID string) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Customer, 0, len(r.items))
	for _, c := range r.items {
		if tenantID == "" || c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

type planRepo struct {
	mu    sync.RWMutex
	items []domain.ProductPlan
}

func (r *planRepo) List(_ context.Context) ([]domain.ProductPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ProductPlan, len(r.items))
	copy(out, r.items)
	return out, nil
}

type gatewayRepo struct {
	mu    sync.RWMutex
	items []domain.PaymentGateway
}

func (r *gatewayRepo) List(_ context.Context, tenantID string) ([]domain.PaymentGateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentGateway, 0, len(r.items))
	for _, g := range r.items {
		if tenantID == "" || g.TenantID == tenantID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *gatewayRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type transactionRepo struct {
	mu    sync.RWMutex
	items []domain.Transaction
}

func (r *transactionRepo) List(_ context.Context, tenantID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(r.items))
	for _, t := range r.items {
		if tenantID == "" || t.TenantID == tenantID {
			out = append(out, t)
		}
	}
	return out, nil
}

type eventRepo struct {
	mu    sync.RWMutex
	items []domain.Event
}

func (r *eventRepo) List(_ context.Context, tenantID string) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Event, 0, len(r.items))
	for _, e := range r.items {
		if tenantID == "" || e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}
