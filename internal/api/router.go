package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/younivent/platform/internal/api/handler"
	"github.com/younivent/platform/internal/api/middleware"
	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

// Deps bundles everything the router needs. Mongo and Redis handles are nil
// when the corresponding backend is not configured; they only feed the
// readiness probe.
type Deps struct {
	Log         zerolog.Logger
	JWTSecret   string
	JobDuration time.Duration

	Repos      ports.Repositories
	Auth       ports.AuthService
	Prefs      ports.PreferenceService
	Dashboards ports.DashboardService
	Tracker    ports.ActionTracker
	Confirmer  ports.Confirmer
	Notifier   ports.Notifier
	Dispatcher ports.JobDispatcher

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("younivent"))

	auth := middleware.Auth(d.JWTSecret)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	prefHandler := handler.NewPreferenceHandler(d.Prefs)
	dashHandler := handler.NewDashboardHandler(d.Dashboards)
	entityHandler := handler.NewEntityHandler(d.Repos, d.Confirmer, d.Notifier, d.Prefs)
	notifHandler := handler.NewNotificationHandler(d.Notifier)
	confHandler := handler.NewConfirmationHandler(d.Confirmer)
	jobHandler := handler.NewJobHandler(d.Dispatcher, d.Tracker, d.JobDuration)
	healthHandler := handler.NewHealthHandler(d.Mongo, d.Redis)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Authenticated API ---
	v1 := e.Group("/v1", auth)

	v1.GET("/dashboard", dashHandler.Get)

	prefs := v1.Group("/preferences")
	prefs.GET("/currency", prefHandler.GetCurrency)
	prefs.PUT("/currency", prefHandler.SetCurrency)
	prefs.GET("/language", prefHandler.GetLanguage)
	prefs.PUT("/language", prefHandler.SetLanguage)
	prefs.GET("/period", prefHandler.GetPeriod)
	prefs.PUT("/period", prefHandler.SetPeriod)
	prefs.GET("/theme", prefHandler.GetTheme)
	prefs.PUT("/theme", prefHandler.SetTheme)

	v1.GET("/i18n/:lang", prefHandler.Translations)

	superOnly := middleware.RBAC(domain.RoleSuperAdmin)
	adminRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleClientAdmin)
	staffRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleClientAdmin, domain.RoleSubAdmin)

	v1.GET("/clients", entityHandler.ListClients, superOnly)
	v1.POST("/clients/:id/status", entityHandler.SetClientStatus, superOnly)
	v1.DELETE("/clients/:id", entityHandler.DeleteClient, superOnly)
	v1.GET("/plans", entityHandler.ListPlans, superOnly)
	v1.GET("/transactions", entityHandler.ListTransactions, adminRoles)
	v1.GET("/providers", entityHandler.ListProviders, adminRoles)
	v1.GET("/gateways", entityHandler.ListGateways, adminRoles)
	v1.DELETE("/gateways/:id", entityHandler.DeleteGateway, adminRoles)
	v1.GET("/customers", entityHandler.ListCustomers, staffRoles)
	v1.GET("/events", entityHandler.ListEvents)

	v1.GET("/notifications", notifHandler.List)
	v1.DELETE("/notifications/:id", notifHandler.Dismiss)

	v1.GET("/confirmations/pending", confHandler.Pending)
	v1.POST("/confirmations/:id/confirm", confHandler.Confirm)
	v1.POST("/confirmations/:id/cancel", confHandler.Cancel)

	v1.POST("/jobs", jobHandler.Run)
	v1.GET("/jobs/busy", jobHandler.Busy)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
