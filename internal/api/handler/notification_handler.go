package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/ports"
)

type NotificationHandler struct {
	notifier ports.Notifier
}

func NewNotificationHandler(notifier ports.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List returns the caller's live notifications in insertion order.
//
// @Summary      List active notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.notifier.Active(identity.ID))
}

// Dismiss removes a notification before its expiry.
//
// @Summary      Dismiss a notification
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if !h.notifier.Dismiss(identity.ID, c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.NoContent(http.StatusNoContent)
}
