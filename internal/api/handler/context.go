package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/domain"
)

// ctxIdentity rebuilds the caller's identity from the claims injected by the
// Auth middleware. A missing role means the middleware never ran; reject with
// 401 before touching any service.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}

	email, _ := c.Get("email").(string)
	tenantID, _ := c.Get("tenant_id").(string)

	return &domain.User{
		ID:       userID,
		Email:    email,
		Role:     domain.Role(role),
		TenantID: tenantID,
	}, nil
}

// tenantScope returns the tenant filter for list queries: super admins see
// everything, everyone else only their own tenant.
func tenantScope(u *domain.User) string {
	if u.Role == domain.RoleSuperAdmin {
		return ""
	}
	return u.TenantID
}
