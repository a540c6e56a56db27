package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/api/metrics"
	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/i18n"
	"github.com/younivent/platform/internal/core/ports"
)

// EntityHandler serves the entity tables and routes destructive mutations
// through the confirmation gate.
type EntityHandler struct {
	repos     ports.Repositories
	confirmer ports.Confirmer
	notifier  ports.Notifier
	prefs     ports.PreferenceService
}

func NewEntityHandler(repos ports.Repositories, confirmer ports.Confirmer, notifier ports.Notifier, prefs ports.PreferenceService) *EntityHandler {
	return &EntityHandler{repos: repos, confirmer: confirmer, notifier: notifier, prefs: prefs}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended pending"`
}

type confirmationPendingResponse struct {
	Confirmation *domain.Confirmation `json:"confirmation"`
}

// ListClients returns the client-admin table.
//
// @Summary      List client admins
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ClientAdmin
// @Router       /v1/clients [get]
func (h *EntityHandler) ListClients(c echo.Context) error {
	clients, err := h.repos.Clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// SetClientStatus toggles a client's status. The change applies to the
// current table only; with the in-memory store it vanishes on restart.
//
// @Summary      Set client status
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ClientAdmin
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id}/status [post]
func (h *EntityHandler) SetClientStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	client, err := h.repos.Clients.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient parks the deletion behind a confirmation. The action only
// runs when the caller confirms; cancelling discards it.
//
// @Summary      Request client deletion
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  confirmationPendingResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *EntityHandler) DeleteClient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	ctx := c.Request().Context()
	client, err := h.repos.Clients.FindByID(ctx, id)
	if err != nil {
		return err
	}

	lang := h.prefs.Language(ctx, identity.ID)
	conf, err := h.confirmer.Request(ctx, ports.ConfirmationRequest{
		UserID:       identity.ID,
		Title:        fmt.Sprintf("Delete %s?", client.CompanyName),
		Message:      "This removes the client and all of its events.",
		ConfirmLabel: "Delete",
		CancelLabel:  "Keep",
		Severity:     domain.SeverityDanger,
	}, h.deleteClientAction(identity.ID, id, client.CompanyName, lang))
	if err != nil {
		metrics.ConfirmationsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.ConfirmationsTotal.WithLabelValues("requested").Inc()
	return c.JSON(http.StatusAccepted, confirmationPendingResponse{Confirmation: conf})
}

func (h *EntityHandler) deleteClientAction(userID, clientID, name string, lang domain.Language) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := h.repos.Clients.Delete(ctx, clientID); err != nil {
			return err
		}
		h.notifyDeleted(userID, lang, name)
		return nil
	}
}

func (h *EntityHandler) deleteGatewayAction(userID, gatewayID string, lang domain.Language) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := h.repos.Gateways.Delete(ctx, gatewayID); err != nil {
			return err
		}
		h.notifyDeleted(userID, lang, gatewayID)
		return nil
	}
}

// ListProviders returns the provider table scoped to the caller's tenant.
func (h *EntityHandler) ListProviders(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	providers, err := h.repos.Providers.List(c.Request().Context(), tenantScope(identity))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, providers)
}

// ListCustomers returns the customer table scoped to the caller's tenant.
func (h *EntityHandler) ListCustomers(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	customers, err := h.repos.Customers.List(c.Request().Context(), tenantScope(identity))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// ListPlans returns the product-plan table.
func (h *EntityHandler) ListPlans(c echo.Context) error {
	plans, err := h.repos.Plans.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// ListGateways returns the configured payment gateways for the tenant.
func (h *EntityHandler) ListGateways(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	gateways, err := h.repos.Gateways.List(c.Request().Context(), tenantScope(identity))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gateways)
}

// DeleteGateway parks gateway removal behind a confirmation.
//
// @Summary      Request gateway removal
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  confirmationPendingResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/gateways/{id} [delete]
func (h *EntityHandler) DeleteGateway(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	ctx := c.Request().Context()
	lang := h.prefs.Language(ctx, identity.ID)

	conf, err := h.confirmer.Request(ctx, ports.ConfirmationRequest{
		UserID:       identity.ID,
		Title:        "Remove payment gateway?",
		Message:      "Pending payouts through this gateway will fail.",
		ConfirmLabel: "Remove",
		CancelLabel:  "Keep",
		Severity:     domain.SeverityWarning,
	}, h.deleteGatewayAction(identity.ID, id, lang))
	if err != nil {
		metrics.ConfirmationsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.ConfirmationsTotal.WithLabelValues("requested").Inc()
	return c.JSON(http.StatusAccepted, confirmationPendingResponse{Confirmation: conf})
}

// ListTransactions returns the transaction table scoped to the caller's tenant.
func (h *EntityHandler) ListTransactions(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	txns, err := h.repos.Transactions.List(c.Request().Context(), tenantScope(identity))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txns)
}

// ListEvents returns the event table scoped to the caller's tenant.
func (h *EntityHandler) ListEvents(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	events, err := h.repos.Events.List(c.Request().Context(), tenantScope(identity))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EntityHandler) notifyDeleted(userID string, lang domain.Language, what string) {
	h.notifier.Success(userID, i18n.T(lang, "notifications.deleted"), what)
}
