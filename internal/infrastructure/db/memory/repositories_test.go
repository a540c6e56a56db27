package memory

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/younivent/platform/internal/core/domain"
)

func TestSeedUsers_OnePerRole(t *testing.T) {
	users := SeedUsers()
	seen := make(map[domain.Role]bool)
	for _, u := range users {
		if seen[u.Role] {
			t.Fatalf("role %s seeded twice", u.Role)
		}
		seen[u.Role] = true
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(DemoPassword)) != nil {
			t.Fatalf("seeded hash for %s does not match the demo password", u.Email)
		}
	}
	for _, r := range domain.Roles {
		if !seen[r] {
			t.Fatalf("no seeded account for role %s", r)
		}
	}
}

func TestUserRepository_FindByEmailNormalises(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	u, err := repo.FindByEmail(context.Background(), "  Admin@Younivent.COM ")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if u.Role != domain.RoleSuperAdmin {
		t.Fatalf("wrong account: %+v", u)
	}

	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestClientRepo_SetStatusAndDelete(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	updated, err := repos.Clients.SetStatus(ctx, "c-3", domain.StatusActive)
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if updated.Status != domain.StatusActive {
		t.Fatalf("status not applied: %+v", updated)
	}

	if err := repos.Clients.Delete(ctx, "c-2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repos.Clients.FindByID(ctx, "c-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted client still found: %v", err)
	}
	if err := repos.Clients.Delete(ctx, "c-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete should report ErrNotFound, got %v", err)
	}

	list, err := repos.Clients.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 clients after delete, got %d", len(list))
	}
}

func TestTenantScopedLists(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	all, err := repos.Providers.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	scoped, err := repos.Providers.List(ctx, DemoTenant)
	if err != nil {
		t.Fatalf("scoped list failed: %v", err)
	}
	if len(all) != len(scoped) {
		t.Fatalf("fixtures should all belong to the demo tenant: all=%d scoped=%d", len(all), len(scoped))
	}

	other, err := repos.Providers.List(ctx, "t-elsewhere")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("foreign tenant sees %d providers", len(other))
	}
}

func TestGatewayRepo_Delete(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	if err := repos.Gateways.Delete(ctx, "g-2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	list, err := repos.Gateways.List(ctx, DemoTenant)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != "g-1" {
		t.Fatalf("unexpected gateways after delete: %+v", list)
	}
}
