package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
	"github.com/younivent/platform/internal/core/service"
	"github.com/younivent/platform/internal/infrastructure/db/memory"
)

// testClock is pinned so TTL-based services never expire mid-test.
type testClock struct{ t time.Time }

func (c testClock) Now() time.Time { return c.t }

func newTestClock() testClock {
	return testClock{t: time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newTestContext builds an echo.Context carrying the claims the Auth
// middleware would have injected.
func newTestContext(e *echo.Echo, method, path, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("role", string(user.Role))
		c.Set("tenant_id", user.TenantID)
	}
	return c, rec
}

func superAdmin() *domain.User {
	return &domain.User{ID: "u-1", Email: "admin@younivent.com", Role: domain.RoleSuperAdmin}
}

func clientAdmin() *domain.User {
	return &domain.User{ID: "u-2", Email: "sarah@eventcorp.com", Role: domain.RoleClientAdmin, TenantID: memory.DemoTenant}
}

// testServices wires real in-memory implementations behind one handle.
type testServices struct {
	repos     ports.Repositories
	prefs     *service.PreferenceService
	confirmer *service.Confirmer
	notifier  *service.Broadcaster
	tracker   *service.Tracker
}

func newTestServices() testServices {
	clock := newTestClock()
	return testServices{
		repos:     memory.NewRepositories(),
		prefs:     service.NewPreferenceService(memory.NewKV(clock), zerolog.Nop()),
		confirmer: service.NewConfirmer(clock, zerolog.Nop(), time.Minute),
		notifier:  service.NewBroadcaster(clock, time.Minute),
		tracker:   service.NewTracker(),
	}
}

func requireCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
