package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/younivent/platform/internal/api"
	"github.com/younivent/platform/internal/core/ports"
	"github.com/younivent/platform/internal/core/service"
	"github.com/younivent/platform/internal/infrastructure/config"
	"github.com/younivent/platform/internal/infrastructure/db/memory"
	platformmongo "github.com/younivent/platform/internal/infrastructure/db/mongo"
	platformredis "github.com/younivent/platform/internal/infrastructure/db/redis"
	"github.com/younivent/platform/internal/infrastructure/queue"
	"github.com/younivent/platform/pkg/logger"
)

func main() {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	clock := service.SystemClock{}

	// --- KV backend (preferences + sessions) ---
	var kv ports.KVStore
	deps := api.Deps{}
	switch cfg.KVBackend {
	case "redis":
		rdb, err := platformredis.Connect(ctx, platformredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		kv = platformredis.NewKV(rdb)
		deps.Redis = rdb
	default:
		kv = memory.NewKV(clock)
	}

	// --- Entity tables ---
	repos := memory.NewRepositories()
	switch cfg.Store {
	case "mongo":
		client, db, err := platformmongo.Connect(ctx, platformmongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		users := platformmongo.NewUserRepository(db)
		if err := users.Seed(ctx, memory.SeedUsers()); err != nil {
			log.Fatal().Err(err).Msg("user seeding failed")
		}
		clients := platformmongo.NewClientRepository(db)
		repos.Users = users
		repos.Clients = clients
		deps.Mongo = db
	}

	// --- Core services ---
	prefs := service.NewPreferenceService(kv, log)
	auth := service.NewAuthService(repos.Users, kv, clock, log, cfg.JWTSecret, 24*time.Hour, cfg.LoginDelay)
	tracker := service.NewTracker()
	notifier := service.NewBroadcaster(clock, cfg.NotificationTTL)
	confirmer := service.NewConfirmer(clock, log, cfg.ConfirmationTTL)
	dashboards := service.NewDashboardService(repos, prefs, log)
	jobs := service.NewJobService(tracker, notifier, prefs, log)

	dispatcher := queue.NewDispatcher(cfg.JobWorkers, jobs, log)
	dispatcher.Start(ctx)

	deps.Log = log
	deps.JWTSecret = cfg.JWTSecret
	deps.JobDuration = cfg.JobDuration
	deps.Repos = repos
	deps.Auth = auth
	deps.Prefs = prefs
	deps.Dashboards = dashboards
	deps.Tracker = tracker
	deps.Confirmer = confirmer
	deps.Notifier = notifier
	deps.Dispatcher = dispatcher

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Str("kv", cfg.KVBackend).Msg("younivent platform listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
