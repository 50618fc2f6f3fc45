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

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/catalog"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/config"
	h "github.com/sucessoempreendedor011-lang/empreendedor/internal/http"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/identity"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/logger"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/payment"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer zl.Sync()

	// redis-backed session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		zl.Fatal("failed to connect to redis", zap.Error(err))
	}
	pingCancel()
	store := session.NewRedisStore(redisClient, cfg.Funnel.SessionTTL)

	catalogRepo := catalog.NewMemoryRepository()

	gateway := payment.NewHTTPGateway(cfg.Gateway.URL, cfg.Gateway.QRCodeURL, cfg.Gateway.Timeout)
	attribution := payment.NewAttributionClient(cfg.Attribution.URL, cfg.Attribution.Token, cfg.Attribution.Timeout)
	lookup := identity.NewLookupClient(cfg.Lookup.URL, cfg.Lookup.Timeout)

	// confirmation pipeline: poller publishes, consumer applies
	writer := payment.NewConfirmationWriter(cfg.Kafka.Topic, cfg.Kafka.Brokers...)
	defer writer.Close()
	reader := payment.NewConfirmationReader(cfg.Kafka.Topic, cfg.Kafka.GroupID, cfg.Kafka.Brokers...)
	defer reader.Close()

	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	poller := payment.NewStatusPoller(store, gateway, writer, cfg.Gateway.PollInterval, zl)
	go poller.Run(bgCtx)

	consumer := payment.NewConfirmConsumer(reader, store, attribution, zl)
	go consumer.Run(bgCtx)

	waits := h.WaitDurations{
		AnalysisMin: cfg.Funnel.AnalysisMinWait,
		AgentSearch: cfg.Funnel.AgentSearchWait,
		AgentFound:  cfg.Funnel.AgentFoundWait,
	}

	router := h.NewRouter(h.RouterDeps{
		Catalog:        h.NewCatalogHandler(catalogRepo),
		Funnel:         h.NewFunnelHandler(store, catalogRepo, waits, zl),
		Analysis:       h.NewAnalysisHandler(store, lookup.Lookup, waits, zl),
		Chat:           h.NewChatHandler(store, h.ChatWidget{WidgetID: cfg.Chat.WidgetID, APIHost: cfg.Chat.APIHost}, zl),
		Payment:        h.NewPaymentHandler(store, gateway, attribution, cfg.Funnel.EntryAmountCents, zl),
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("funnel server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	bgCancel()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exited")
}
