package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/devtools-portal/backend/internal/cache"
	"github.com/devtools-portal/backend/internal/config"
	"github.com/devtools-portal/backend/internal/handler"
	"github.com/devtools-portal/backend/internal/metrics"
	"github.com/devtools-portal/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/devtools-portal/backend/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Test File Generator API
// @version 1.0
// @description Generates labelled placeholder PNG, JPEG, PDF and XLSX files for testing uploads and previews.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()
	generateService, err := service.NewGenerateService(logger, cfg.Generator)
	if err != nil {
		logger.Fatalf("generator init error: %v", err)
	}

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			logger.Printf("redis is not reachable, cache errors will be logged: %v\n", err)
		}
		generateService.SetCacheClient(redisCache)
		logger.Println("set redis as cache")
	}

	g := handler.NewGenerateHandler(generateService, logger, cfg.Generator.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Post("/generate", g.Generate)
	r.Post("/generate/preview", g.Preview)
	r.Get("/presets", g.Presets)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
