package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/domain"
)

func newEntityHandler(svcs testServices) *EntityHandler {
	return NewEntityHandler(svcs.repos, svcs.confirmer, svcs.notifier, svcs.prefs)
}

func TestEntityHandler_ListClients(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/v1/clients", "", superAdmin())
	if err := h.ListClients(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	requireCode(t, rec, http.StatusOK)

	var clients []domain.ClientAdmin
	if err := json.Unmarshal(rec.Body.Bytes(), &clients); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("expected 3 seeded clients, got %d", len(clients))
	}
}

func TestEntityHandler_SetClientStatus(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/v1/clients/c-1/status", `{"status":"suspended"}`, superAdmin())
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	if err := h.SetClientStatus(c); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	requireCode(t, rec, http.StatusOK)

	var client domain.ClientAdmin
	if err := json.Unmarshal(rec.Body.Bytes(), &client); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if client.Status != domain.StatusSuspended {
		t.Fatalf("status not applied: %+v", client)
	}
}

func TestEntityHandler_SetClientStatusRejectsUnknownValue(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodPost, "/v1/clients/c-1/status", `{"status":"exploded"}`, superAdmin())
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	err := h.SetClientStatus(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestEntityHandler_DeleteClientConfirmFlow(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()
	admin := superAdmin()

	// Phase one: the delete is parked, nothing is removed yet.
	c, rec := newTestContext(e, http.MethodDelete, "/v1/clients/c-2", "", admin)
	c.SetParamNames("id")
	c.SetParamValues("c-2")
	if err := h.DeleteClient(c); err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	requireCode(t, rec, http.StatusAccepted)

	var resp confirmationPendingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Confirmation == nil || resp.Confirmation.Severity != domain.SeverityDanger {
		t.Fatalf("unexpected confirmation: %+v", resp.Confirmation)
	}
	if _, err := svcs.repos.Clients.FindByID(context.Background(), "c-2"); err != nil {
		t.Fatalf("client deleted before confirmation: %v", err)
	}

	// Phase two: confirming runs the deletion and notifies.
	if err := svcs.confirmer.Confirm(context.Background(), admin.ID, resp.Confirmation.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := svcs.repos.Clients.FindByID(context.Background(), "c-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("client survived confirmation: %v", err)
	}
	if got := len(svcs.notifier.Active(admin.ID)); got != 1 {
		t.Fatalf("expected 1 notification after delete, got %d", got)
	}
}

func TestEntityHandler_DeleteClientCancelKeepsRecord(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodDelete, "/v1/clients/c-1", "", superAdmin())
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	if err := h.DeleteClient(c); err != nil {
		t.Fatalf("delete request failed: %v", err)
	}

	var resp confirmationPendingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if err := svcs.confirmer.Cancel(context.Background(), superAdmin().ID, resp.Confirmation.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svcs.repos.Clients.FindByID(context.Background(), "c-1"); err != nil {
		t.Fatalf("cancelled delete removed the record: %v", err)
	}
}

func TestEntityHandler_DeleteClientSecondRequestRejected(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodDelete, "/v1/clients/c-1", "", superAdmin())
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	if err := h.DeleteClient(c); err != nil {
		t.Fatalf("first delete request failed: %v", err)
	}

	c2, _ := newTestContext(e, http.MethodDelete, "/v1/clients/c-2", "", superAdmin())
	c2.SetParamNames("id")
	c2.SetParamValues("c-2")
	if err := h.DeleteClient(c2); !errors.Is(err, domain.ErrConfirmationPending) {
		t.Fatalf("expected ErrConfirmationPending, got %v", err)
	}
}

func TestEntityHandler_DeleteUnknownClient(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodDelete, "/v1/clients/c-404", "", superAdmin())
	c.SetParamNames("id")
	c.SetParamValues("c-404")
	if err := h.DeleteClient(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEntityHandler_TenantScoping(t *testing.T) {
	svcs := newTestServices()
	h := newEntityHandler(svcs)
	e := newTestEcho()

	// Super admin sees every provider.
	c, rec := newTestContext(e, http.MethodGet, "/v1/providers", "", superAdmin())
	if err := h.ListProviders(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var all []domain.Provider
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	// A foreign tenant admin sees none.
	foreign := &domain.User{ID: "u-8", Email: "x@other.example", Role: domain.RoleClientAdmin, TenantID: "t-other"}
	c2, rec2 := newTestContext(e, http.MethodGet, "/v1/providers", "", foreign)
	if err := h.ListProviders(c2); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var scoped []domain.Provider
	if err := json.Unmarshal(rec2.Body.Bytes(), &scoped); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	if len(all) == 0 || len(scoped) != 0 {
		t.Fatalf("tenant scoping broken: all=%d foreign=%d", len(all), len(scoped))
	}
}
