package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"requestquote/internal/controllers"
	"requestquote/internal/hooks"
	"requestquote/internal/listeners"
	"requestquote/internal/repositories"
	"requestquote/internal/services"
	"requestquote/pkg/config"
	"requestquote/pkg/eventbus"
	"requestquote/pkg/middleware"
	"requestquote/pkg/service"
	"requestquote/pkg/telegram"
	"requestquote/pkg/validation"
)

// InitRouter wires repositories, services and controllers and mounts all
// route groups under /api.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	validator *validation.CustomValidator,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api", middleware.ShopContext())
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- repositories ---
	quoteRepo := repositories.NewQuoteRepository(dbConn, logger)
	productRepo := repositories.NewProductRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- services ---
	catalogService := services.NewCatalogService(productRepo, cacheRepo, logger)
	formTokenService := services.NewFormTokenService(cacheRepo, cfg.Features.FormTokenTTL, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	quoteService := services.NewQuoteService(
		quoteRepo, catalogService, formTokenService, cacheRepo,
		validator, bus, cfg.Features, cfg.Rate, logger,
	)

	var notificationService services.NotificationServiceInterface
	if cfg.Notify.TelegramBotToken != "" && cfg.Notify.TelegramChatID != 0 {
		notificationService = services.NewTelegramNotificationService(
			telegram.NewService(cfg.Notify.TelegramBotToken), cfg.Notify.TelegramChatID, logger,
		)
	} else {
		notificationService = services.NewMockNotificationService(logger)
	}
	listeners.NewNotificationListener(notificationService, logger).Register(bus)

	hookRegistry := hooks.NewDefaultRegistry()

	// --- controllers ---
	quoteController := controllers.NewQuoteController(quoteService, formTokenService, logger)
	adminQuoteController := controllers.NewAdminQuoteController(quoteService, logger)
	authController := controllers.NewAuthController(authService, logger)
	hookController := controllers.NewHookController(hookRegistry, catalogService, formTokenService, cfg.Features, logger)

	// --- routers ---
	runQuoteRouter(api, quoteController)
	runHookRouter(api, hookController)
	runAuthRouter(api, authController)

	secureGroup := api.Group("/admin", authMW.Auth)
	runAdminQuoteRouter(secureGroup, adminQuoteController)
}
