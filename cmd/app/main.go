package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "user-service-backend/docs"
	"user-service-backend/internal/common/config"
	"user-service-backend/internal/common/logger"
	"user-service-backend/internal/common/middleware"
	userHttp "user-service-backend/internal/features/user/delivery/http"
	userRepo "user-service-backend/internal/features/user/repository/mongo"
	userService "user-service-backend/internal/features/user/service"
	mongoplatform "user-service-backend/internal/platform/mongo"
)

// @title           User Service API
// @version         1.0
// @description     CRUD API over a single user collection. All endpoints require the client identity header.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey ClientIdentity
// @in header
// @name User-Agent
// @description Shared-secret client identity token, compared against the USER_AGENT the process was started with

// @tag.name users
// @tag.description User management

func main() {
	cfg := config.Load()

	logger.Init("user-service-backend", cfg.Debug)

	mongoClient, err := mongoplatform.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	userRepository, err := userRepo.NewUserRepository(mongoClient.Database(), cfg.Mongo.Collection)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize user repository")
	}

	userSvc := userService.NewUserService(userRepository)
	userHandler := userHttp.NewUserHandler(userSvc)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "User-Agent", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	// The whole user surface sits behind the shared-secret gate; the
	// probes and the swagger UI stay outside it.
	authed := router.Group("", middleware.ClientAuth(cfg.UserAgent))
	userHandler.RegisterRoutes(authed)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "user-service-backend",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := mongoClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "mongodb unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "user-service-backend",
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	if err := mongoClient.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to close MongoDB client")
	}

	logger.Info().Msg("Server exited")
}
