package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-hub/community-service/config"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/notify"
	"github.com/campus-hub/community-service/internal/pg"
	pgrepo "github.com/campus-hub/community-service/internal/repository/postgres"
	"github.com/campus-hub/community-service/internal/service"
	httpx "github.com/campus-hub/community-service/internal/transport/http"
	"github.com/campus-hub/community-service/internal/transport/ws"
	"github.com/campus-hub/community-service/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting community-service",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	ctx := context.Background()
	pool, err := pg.NewPool(ctx, pg.Config{
		DSN:             cfg.Postgres.DSN,
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		ApplicationName: cfg.Logging.Service,
	})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// --- repos ---
	roomRepo := pgrepo.NewRoomRepo(pool)
	memberRepo := pgrepo.NewMemberRepo(pool)
	messageRepo := pgrepo.NewMessageRepo(pool)
	userRepo := pgrepo.NewUserRepo(pool)
	postRepo := pgrepo.NewPostRepo(pool)
	interactionRepo := pgrepo.NewInteractionRepo(pool)
	notificationRepo := pgrepo.NewNotificationRepo(pool)
	decisionStore := pgrepo.NewDecisionStore(pool)

	// --- event router + sink ---
	router := events.NewRouter(service.NewRoomDirectory(roomRepo, memberRepo))
	sink := notify.NewSink(notificationRepo)
	sink.Register(router)

	// --- services ---
	roomSvc := service.NewRoomService(roomRepo)
	memberSvc := service.NewMemberService(roomRepo, memberRepo, userRepo, router)
	memberSvc.SetHeartbeatWindow(cfg.HeartbeatWindow())
	chatSvc := service.NewChatService(roomRepo, memberRepo, userRepo, messageRepo, router)
	chatSvc.SetMaxContentLen(cfg.Chat.MaxMessageLen)
	postSvc := service.NewPostService(postRepo, userRepo, router)
	interactionSvc := service.NewInteractionService(postRepo, interactionRepo, userRepo, router)
	reviewSvc := service.NewReviewService(decisionStore, router)
	notifSvc := service.NewNotificationService(notificationRepo)

	// --- WS Hub & Server ---
	hub := ws.NewHub()
	wsServer := ws.NewServer(hub, memberSvc, chatSvc)
	router.Register(events.EventChatMessage, wsServer.HandleChatEvent)

	// --- HTTP ---
	handler := httpx.NewHandler(roomSvc, memberSvc, chatSvc, postSvc, interactionSvc, reviewSvc, notifSvc)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      httpx.NewRouter(handler, memberSvc, wsServer),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
