package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/javatech/cim-portal/config"
	"github.com/javatech/cim-portal/middleware"
	"github.com/javatech/cim-portal/services"
	"github.com/javatech/cim-portal/ws"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, cfg config.Config, hub *ws.Hub) {
	tokens := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	users := services.NewUserService(db)
	settings := services.NewSettingsService(db)
	chat := services.NewChatService(db, cfg.ChatHistoryLimit, time.Duration(cfg.ChatDeleteWindowMin)*time.Minute)
	presence := services.NewPresenceService(db)
	roles := services.NewRoleService(db)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints; registration and login are rate limited per client IP
	authController := NewAuthController(users, tokens)
	authLimiter := middleware.NewRateLimiter(rate.Limit(float64(cfg.AuthRatePerMinute)/60.0), cfg.AuthRateBurst)
	authGroup := router.Group("/users")
	{
		authGroup.POST("/register", authLimiter.Middleware(), authController.Register)
		authGroup.POST("/login", authLimiter.Middleware(), authController.Login)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(tokens), authController.GetCurrentUser)
	}

	// Authenticated routes
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware(tokens))

	// Admin routes
	adminRouter := router.Group("")
	adminRouter.Use(middleware.AuthMiddleware(tokens), middleware.AdminMiddleware())

	// User moderation - admin only
	NewUserController(users).RegisterRoutes(adminRouter)

	// Global settings - admin only
	NewSettingsController(settings).RegisterRoutes(adminRouter)

	// Role catalogue - admin only
	adminRouter.GET("/roles", NewRoleController(roles).ListRoles)

	// Chat REST endpoints and the websocket
	NewChatController(chat, presence).RegisterRoutes(authRouter)
	router.GET("/chat/ws", ws.Serve(hub, tokens, users, chat, presence))

	// Portal CRUD: reads for authenticated users, mutations for admins
	NewModuleController(services.NewModuleService(db)).RegisterRoutes(authRouter, adminRouter)
	NewStatusController(services.NewStatusService(db)).RegisterRoutes(authRouter, adminRouter)
	NewRequirementController(services.NewRequirementService(db)).RegisterRoutes(authRouter, adminRouter)
	NewBimModelController(services.NewBimModelService(db)).RegisterRoutes(authRouter, adminRouter)
	NewBbbSessionController(services.NewBbbSessionService(db)).RegisterRoutes(authRouter, adminRouter)
}
