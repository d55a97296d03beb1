package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	dbadapter "emojifeed/internal/adapters/database"
	"emojifeed/internal/adapters/httpapi"
	metricsadapter "emojifeed/internal/adapters/metrics"
	redisadapter "emojifeed/internal/adapters/redis"
	"emojifeed/internal/config"
	feedapp "emojifeed/internal/core/feed/service"
	"emojifeed/internal/core/post"
	postapp "emojifeed/internal/core/post/service"
	"emojifeed/internal/core/ratelimit"
	ratelimitapp "emojifeed/internal/core/ratelimit/service"
	userapp "emojifeed/internal/core/user/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		// logger is not configured yet
		config.InitLogger("development").Fatal("Invalid configuration", zap.Error(err))
	}

	logger := config.InitLogger(settings.Env)
	if settings.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(settings.DBDSN)
	if err != nil {
		logger.Fatal("Error connecting to database", zap.Error(err))
	}
	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("Error during migrations", zap.Error(err))
	}
	logger.Info("✅ Database migrations completed")

	if _, err := config.InitRedis(settings.RedisAddr, settings.RedisPassword, settings.RedisDB); err != nil {
		logger.Fatal("Error connecting to Redis", zap.Error(err))
	}

	defer closeResources(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metricsadapter.NewPrometheus(reg)

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	resolver := dbadapter.NewIdentityResolverDatabase(db, settings.IdentityTimeout)
	counterStore := redisadapter.NewRateLimitRepositoryRedis(config.RedisClient)

	limiter := ratelimitapp.NewLimiterService(counterStore, ratelimit.Policy{
		MaxRequests: settings.RateLimitMax,
		Window:      settings.RateLimitWindow,
	}, logger)

	policy := post.DefaultContentPolicy()
	policy.MaxLength = settings.ContentMaxLength

	userSvc := userapp.NewUserService(userRepo, []byte(settings.JWTSecret), logger)
	postSvc := postapp.NewPostService(postRepo, limiter, policy, recorder, logger)
	feedSvc := feedapp.NewFeedService(postRepo, resolver, settings.FeedLimit, recorder, logger)

	r := httpapi.SetupRoutes(httpapi.RouterConfig{
		Users:     userSvc,
		Feed:      feedSvc,
		Posts:     postSvc,
		JWTSecret: []byte(settings.JWTSecret),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("App is running...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
	_ = logger.Sync()
}
