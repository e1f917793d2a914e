package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hadithapi/internal/config"
	"hadithapi/internal/hadith"
	"hadithapi/internal/httpx"
	"hadithapi/internal/logger"
	"hadithapi/internal/postgres"
	"hadithapi/internal/random"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zlog.Fatal("cannot create db pool", zap.Error(err))
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		zlog.Fatal("cannot ping database", zap.Error(err))
	}
	zlog.Info("database connection OK")

	repo := hadith.NewPostgresRepo(pool, cfg.DB.QueryTimeout)
	service := hadith.NewService(repo, random.New(), zlog, cfg.MaxPageSize)
	handler := hadith.NewHTTPHandler(service, zlog)

	router := newRouter(handler, pool)

	chain := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(zlog)(
			httpx.MetricsMiddleware(
				httpx.CORSMiddleware(
					httpx.RecoveryMiddleware(zlog)(router)))))

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chain,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zlog.Info("starting server", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server error", zap.Error(err))
	}
}
