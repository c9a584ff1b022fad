package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/niverapp/event-system/internal/api/handler"
	"github.com/niverapp/event-system/internal/api/middleware"
	"github.com/niverapp/event-system/internal/core/ports"
)

// Deps carries every dependency the router wires into handlers. All of them
// are constructed in main and passed in explicitly; nothing here is a
// package-level singleton.
type Deps struct {
	Expenses ports.ExpenseService
	Invites  ports.InviteService
	Auth     ports.AuthService
	Activity ports.ActivityService
	Sessions middleware.SessionChecker

	JWTSecret string
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Unsupported methods on known paths get Echo's native 405 with an Allow
// header listing the permitted methods.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("eventapp"))

	// --- Handlers ---
	expenseHandler := handler.NewExpenseHandler(deps.Expenses)
	inviteHandler := handler.NewInviteHandler(deps.Invites)
	authHandler := handler.NewAuthHandler(deps.Auth)
	activityHandler := handler.NewActivityHandler(deps.Activity)

	authRequired := middleware.Auth(deps.JWTSecret, deps.Sessions)
	adminOnly := middleware.RBAC("admin")

	// --- Public API (the pages gate access client-side; the API itself only
	// protects the admin surfaces) ---
	e.GET("/api/expenses", expenseHandler.List)
	e.POST("/api/expenses", expenseHandler.Create)
	e.GET("/api/expenses/:id", expenseHandler.Get)
	e.PUT("/api/expenses/:id", expenseHandler.Update)
	e.DELETE("/api/expenses/:id", expenseHandler.Delete)

	e.POST("/api/invite", inviteHandler.Save)
	e.POST("/api/login", authHandler.Login)

	// --- Session-gated API ---
	e.POST("/api/logout", authHandler.Logout, authRequired)
	e.POST("/api/register", authHandler.Register, authRequired, adminOnly)
	e.GET("/api/invites", inviteHandler.List, authRequired, adminOnly)
	e.GET("/api/activity", activityHandler.List, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
