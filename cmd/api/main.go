package main

import (
	"os"
	"time"

	_ "github.com/MTrazona/aurum-platform-admin-sub000/api/swagger" // swagger docs
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/config"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/database"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/handler"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/repository"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/review"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/service"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Aurum Platform Admin API
// @version         1.0
// @description     Back-office API for reviewing customer-submitted financial requests.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if gin.Mode() == gin.ReleaseMode {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	cfg := config.Load()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to postgres")

	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Local admin database: staff accounts, sessions, audit trail.
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txm := repository.NewTransactionManager(db)

	userService := service.NewUserService(userRepo, tokenRepo, txm, cfg)
	auditService := service.NewAuditService(auditRepo, log)

	// Platform core API gateway and per-domain review engines.
	platformClient := platform.NewClient(cfg.PlatformBaseURL, cfg.PlatformTimeout,
		func() string { return cfg.PlatformToken }, log)
	engines := review.BuildEngines(platformClient, auditService, wsHub, log)
	charityService := service.NewCharityService(platform.NewCharities(platformClient), auditService, log)

	jwtSecret := []byte(cfg.JWTSecret)
	userHandler := handler.NewUserHandler(userService, jwtSecret)
	reviewHandler := handler.NewReviewHandler(engines, jwtSecret)
	dashboardHandler := handler.NewDashboardHandler(engines, jwtSecret)
	charityHandler := handler.NewCharityHandler(charityService, jwtSecret)
	auditHandler := handler.NewAuditHandler(auditService, jwtSecret)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, jwtSecret)
	})

	userHandler.RegisterRoutes(router.Group(""))
	reviewHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))
	charityHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
