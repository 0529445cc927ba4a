package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/fixpoint/repairdesk/docs"
	"github.com/fixpoint/repairdesk/internal/api/handler"
	"github.com/fixpoint/repairdesk/internal/api/middleware"
	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
	"github.com/fixpoint/repairdesk/internal/core/service"
	"github.com/fixpoint/repairdesk/internal/core/token"
	redisinfra "github.com/fixpoint/repairdesk/internal/infrastructure/db/redis"
	"github.com/fixpoint/repairdesk/internal/infrastructure/db/sqlite"
	"github.com/fixpoint/repairdesk/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, notifier ports.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("repairdesk"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	revoker := redisinfra.NewTokenRevoker(rdb)

	userRepo := sqlite.NewUserRepository(db)
	resetRepo := sqlite.NewResetRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	articleRepo := sqlite.NewArticleRepository(db)
	repairRepo := sqlite.NewRepairRepository(db)
	supportRepo := sqlite.NewSupportRepository(db)

	authService := service.NewAuthService(userRepo, issuer, revoker, log)
	resetService := service.NewResetService(userRepo, resetRepo, notifier, cfg.Auth.ResetTokenTTL, log)
	catalogService := service.NewCatalogService(categoryRepo, articleRepo, log)
	repairService := service.NewRepairService(repairRepo, notifier, log)
	supportService := service.NewSupportService(supportRepo, log)

	authHandler := handler.NewAuthHandler(authService, resetService)
	userHandler := handler.NewUserHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	repairHandler := handler.NewRepairHandler(repairService)
	supportHandler := handler.NewSupportHandler(supportService)

	authRequired := middleware.Auth(issuer, userRepo, revoker)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	supportReaders := middleware.RequirePermission(domain.PermSupportRead)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.POST("/auth/reset-password", authHandler.RequestReset)
	e.PUT("/auth/reset-password", authHandler.ConsumeReset)

	// --- Account routes ---
	user := e.Group("/user", authRequired)
	user.GET("/profile", userHandler.Profile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.PUT("/password", userHandler.ChangePassword)

	// --- Catalog: reads are public, writes are admin only ---
	e.GET("/category", catalogHandler.ListCategories)
	e.GET("/category/:id", catalogHandler.GetCategory)
	e.POST("/category", catalogHandler.CreateCategory, authRequired, adminOnly)
	e.PUT("/category/:id", catalogHandler.UpdateCategory, authRequired, adminOnly)
	e.DELETE("/category/:id", catalogHandler.DeleteCategory, authRequired, adminOnly)

	e.GET("/article", catalogHandler.ListArticles)
	e.GET("/article/:id", catalogHandler.GetArticle)
	e.POST("/article", catalogHandler.CreateArticle, authRequired, adminOnly)
	e.PUT("/article/:id", catalogHandler.UpdateArticle, authRequired, adminOnly)
	e.DELETE("/article/:id", catalogHandler.DeleteArticle, authRequired, adminOnly)

	// --- Repair quotes: the whole surface is back-office only ---
	repair := e.Group("/repair-request", authRequired, adminOnly)
	repair.POST("", repairHandler.Create)
	repair.GET("", repairHandler.List)
	repair.GET("/:id", repairHandler.Get)
	repair.PUT("/:id", repairHandler.Update)
	repair.DELETE("/:id", repairHandler.Delete)

	// --- Support requests: public intake, listing for roles granted
	// support_request.read (admin and employee) ---
	e.POST("/support-request", supportHandler.Create)
	e.GET("/support-request", supportHandler.List, authRequired, supportReaders)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
