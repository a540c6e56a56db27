package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/api/metrics"
	"github.com/younivent/platform/internal/core/ports"
)

// ConfirmationHandler drives the second phase of the confirmation gate.
type ConfirmationHandler struct {
	confirmer ports.Confirmer
}

func NewConfirmationHandler(confirmer ports.Confirmer) *ConfirmationHandler {
	return &ConfirmationHandler{confirmer: confirmer}
}

// Pending returns the caller's open confirmation, or 204 when there is none.
// Requests parked by other users are not visible.
//
// @Summary      Get pending confirmation
// @Tags         confirmations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Confirmation
// @Success      204
// @Router       /v1/confirmations/pending [get]
func (h *ConfirmationHandler) Pending(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	conf := h.confirmer.Pending(identity.ID)
	if conf == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, conf)
}

// Confirm runs the parked action exactly once. Only the user who requested
// the confirmation may execute it.
//
// @Summary      Confirm a pending action
// @Tags         confirmations
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/confirmations/{id}/confirm [post]
func (h *ConfirmationHandler) Confirm(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.confirmer.Confirm(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return err
	}
	metrics.ConfirmationsTotal.WithLabelValues("confirmed").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Cancel discards the parked action without running it. Same ownership rule
// as Confirm.
//
// @Summary      Cancel a pending action
// @Tags         confirmations
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/confirmations/{id}/cancel [post]
func (h *ConfirmationHandler) Cancel(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.confirmer.Cancel(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return err
	}
	metrics.ConfirmationsTotal.WithLabelValues("cancelled").Inc()
	return c.NoContent(http.StatusNoContent)
}
