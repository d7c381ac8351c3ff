package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/talawarsneha/project-management-app/config"
	"github.com/talawarsneha/project-management-app/internal/container"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/recordstore"
	"github.com/talawarsneha/project-management-app/internal/interface/middleware"
	"github.com/talawarsneha/project-management-app/internal/router"
	"github.com/talawarsneha/project-management-app/internal/seed"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
	"github.com/talawarsneha/project-management-app/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Record store backend
	var store repository.RecordStore
	if cfg.MemoryDriver() {
		store = recordstore.NewMemoryStore()
		logger.Warn("using in-memory record store; data will not survive restarts")
	} else {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		container.SetRedis(rdb)
		store = recordstore.NewRedisStore(rdb)
	}

	blobCodec := codec.New(logger)
	keys := kvstore.NewKeys(cfg.StorageNamespace)

	// JWT
	jwtManager := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetStore(store)
	container.SetCodec(blobCodec)
	container.SetKeys(keys)
	container.SetJWT(jwtManager)

	if cfg.SeedOnStart {
		if err := seed.Run(ctx, store, blobCodec, keys, logger); err != nil {
			logger.WithError(err).Warn("seeding demo data failed")
		}
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestIDMiddleware())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
