package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"poshan-board/internal/alerts"
	"poshan-board/internal/config"
	"poshan-board/internal/gateway"
	httpapi "poshan-board/internal/http"
	"poshan-board/internal/logger"
	"poshan-board/internal/service"
	"poshan-board/internal/session"
	"poshan-board/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "poshan-board")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Sessions live in Redis so a restart doesn't log everyone out. When
	// Redis is unreachable we fall back to the in-memory store and keep
	// serving; sessions then only last the process lifetime.
	var kv store.KV
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, using in-memory session store", zap.Error(err))
		kv = store.NewMemoryKV()
	} else {
		kv = store.NewRedisKV(redisClient)
	}
	cancel()

	sessions := session.NewStore(kv, cfg.Session.MaxAge, log)
	idle := session.NewMonitor(cfg.Session.InactivityTimeout, cfg.Session.InactivityWarning, log)

	remote := gateway.New(cfg.Remote.BaseURL, log)
	log.Info("Remote API configured", zap.String("base_url", cfg.Remote.BaseURL))

	var publisher alerts.Publisher = alerts.NopPublisher{}
	if cfg.MQTT.Enabled {
		p, err := alerts.NewPublisher(&cfg.MQTT, log)
		if err != nil {
			log.Warn("MQTT broker unavailable, critical alerts disabled", zap.Error(err))
		} else {
			publisher = p
			log.Info("MQTT alert publisher connected",
				zap.String("broker", cfg.MQTT.Broker),
				zap.String("topic", cfg.MQTT.Topic),
			)
		}
	}
	defer publisher.Close()

	ctrl := service.NewController(remote, sessions, idle, publisher, log)

	api := httpapi.NewAPI(ctrl, log)
	router := httpapi.NewRouter(log)
	router.RegisterAuthRoutes(api)
	router.RegisterDashboardRoutes(api)
	router.RegisterAdminRoutes(api)

	srv := service.NewServer(cfg.HTTP.Addr, router.Handler(), log)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
	log.Info("poshan-board stopped")
}
