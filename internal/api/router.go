package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/minimart/storefront-api/internal/api/handler"
	"github.com/minimart/storefront-api/internal/api/middleware"
	"github.com/minimart/storefront-api/internal/core/domain"
	"github.com/minimart/storefront-api/internal/core/service"
	"github.com/minimart/storefront-api/internal/infrastructure/config"
	"github.com/minimart/storefront-api/internal/infrastructure/db/postgres"
	redisdb "github.com/minimart/storefront-api/internal/infrastructure/db/redis"
	"github.com/minimart/storefront-api/internal/infrastructure/storage"
)

// Dependencies carries everything the router needs to assemble the service
// graph. Connections are opened by the caller so their lifecycle stays in
// main.
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier handler.Notifier
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Infrastructure ---
	images, err := storage.NewImageStore(cfg.ImageDir)
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}
	sessions := redisdb.NewSessionStore(deps.Redis)

	userRepo := postgres.NewUserRepository(deps.DB)
	productRepo := postgres.NewProductRepository(deps.DB)
	orderRepo := postgres.NewOrderRepository(deps.DB)
	commentRepo := postgres.NewCommentRepository(deps.DB)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessions, service.AdminAllowList{
		Usernames: cfg.AdminUsernames,
		Emails:    cfg.AdminEmails,
	}, cfg.JWTSecret, cfg.TokenTTL, deps.Logger)
	catalogService := service.NewCatalogService(productRepo, images, deps.Logger)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, deps.Notifier, deps.Logger)
	commentService := service.NewCommentService(commentRepo, productRepo, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	commentHandler := handler.NewCommentHandler(commentService)
	contactHandler := handler.NewContactHandler(deps.Notifier, cfg.SMTP.ContactRecipient)

	authRequired := middleware.Auth(cfg.JWTSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/sign-up", authHandler.SignUp)
	e.POST("/auth/login", authHandler.LogIn)
	e.POST("/auth/logout", authHandler.LogOut, authRequired)

	// --- Public catalog ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/:id", catalogHandler.Get)
	e.GET("/v1/products/:id/comments", commentHandler.List)
	e.Static("/static/images", cfg.ImageDir)

	// --- Contact form ---
	e.POST("/contact", contactHandler.Submit)

	// --- Authenticated shopper routes ---
	shop := e.Group("/v1", authRequired)
	shop.POST("/orders", orderHandler.Place)
	shop.POST("/orders/payment", orderHandler.Pay)
	shop.GET("/orders", orderHandler.ListMine)
	shop.POST("/products/:id/comments", commentHandler.Add)

	// --- Admin routes ---
	admin := e.Group("/v1", authRequired, adminOnly)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.DELETE("/products/:id", catalogHandler.Delete)
	admin.GET("/admin/orders", orderHandler.ListAll)
	admin.POST("/admin/orders/:id/complete", orderHandler.Complete)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, nil
}
