package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/config"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/cache"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/handler"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/repository"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/seed"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/service"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/middleware"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

const streamPath = "/api/v1/dash/notifications/stream"

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting vendai-dash service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始数据：数据库导入或内置演示数据
	dataset := seed.Default()
	if cfg.Database.Enabled {
		db, err := initDatabase(cfg.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect database", zap.Error(err))
		}
		importer := repository.NewImporter(db)
		importCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ReadTimeout)
		counts, err := importer.Counts(importCtx)
		if err == nil {
			dataset, err = importer.LoadAll(importCtx)
		}
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to import dataset", zap.Error(err))
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		zapLogger.Info("Dataset imported", zap.String("driver", cfg.Database.Driver), zap.Any("rows", counts))
	}

	// 列表缓存
	var viewCache cache.ViewCache = cache.Noop{}
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = initRedis(cfg.Redis)
		redisCache := cache.NewRedisCache(rdb, cfg.Redis.TTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ReadTimeout)
		if err := redisCache.Ping(pingCtx); err != nil {
			zapLogger.Warn("Redis unavailable, list cache disabled", zap.Error(err))
		} else {
			viewCache = redisCache
			zapLogger.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
		cancel()
	}

	// 通知
	center := notify.NewCenter(cfg.Notify.TTL, notify.NewHub(zapLogger), zapLogger)

	services, err := service.NewServices(dataset, service.Deps{
		Cache:    viewCache,
		Notifier: center,
		Logger:   zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to build services", zap.Error(err))
	}
	handlers := handler.NewHandlers(services, center, zapLogger)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{streamPath})))

	registerRoutes(router, handlers)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // SSE 长连接
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	// 先关闭通知，让 SSE 连接退出
	center.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	h.Register(r.Group("/api/v1/dash"))
}
