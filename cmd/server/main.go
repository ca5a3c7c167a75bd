// Package main - точка входа HTTP-сервера Progress Hub.
//
// Философия local-first: локальная SQLite-база - единственный источник
// истины, облачное зеркало - необязательное удобство. Любой сбой зеркала
// деградирует приложение до локального режима, но никогда не ломает его.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: хранилища, внешние API, шина событий
// - Interface: HTTP endpoints
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	// Application layer
	"github.com/hsc-elite/progress-hub/internal/application/command"
	"github.com/hsc-elite/progress-hub/internal/application/query"

	// Domain layer
	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"

	// Infrastructure layer
	"github.com/hsc-elite/progress-hub/internal/infrastructure/external/tutor"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/messaging"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/persistence/local"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/persistence/postgres"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/persistence/redis"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/syncer"

	// Interface layer
	httpserver "github.com/hsc-elite/progress-hub/internal/interface/http"

	// Packages
	"github.com/hsc-elite/progress-hub/config"
	"github.com/hsc-elite/progress-hub/pkg/logger"
	"github.com/hsc-elite/progress-hub/pkg/timeutil"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil {
		// .env необязателен; в проде переменные приходят из окружения
		fmt.Fprintln(os.Stderr, "no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.App.LogLevel))
	log.Info("starting progress hub",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.Bool("mirror", cfg.Mirror.Enabled()),
		logger.Bool("cache", cfg.Redis.Enabled()),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ЛОКАЛЬНОЕ ХРАНИЛИЩЕ (SQLite)
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("opening local store", logger.String("path", cfg.LocalStore.Path))
	store, err := local.Open(cfg.LocalStore.Path)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() {
		log.Info("closing local store")
		_ = store.Close()
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ОБЛАЧНОЕ ЗЕРКАЛО (опционально: PostgreSQL + Redis-кеш)
	// ─────────────────────────────────────────────────────────────────────────
	var mirror profile.Mirror
	if cfg.Mirror.Enabled() {
		log.Info("connecting to mirror...")
		pgMirror, err := postgres.Connect(ctx, postgres.Config{
			URL:          cfg.Mirror.URL,
			MaxConns:     cfg.Mirror.MaxConns,
			QueryTimeout: cfg.Mirror.QueryTimeout,
		})
		if err != nil {
			// Недоступное зеркало не мешает старту: локальный режим
			log.Warn("mirror unreachable, running local-only", logger.Err(err))
		} else {
			defer pgMirror.Close()
			mirror = pgMirror
			log.Info("mirror connection established")

			if cfg.Redis.Enabled() {
				// Кеш best-effort: недоступный Redis пропускается на лету
				cached := redis.NewCachedMirror(pgMirror, redis.Config{
					Addr:        cfg.Redis.Addr,
					Password:    cfg.Redis.Password,
					DB:          cfg.Redis.DB,
					DialTimeout: cfg.Redis.DialTimeout,
				})
				defer cached.Close()
				mirror = cached
				log.Info("mirror cache enabled")
			}
		}
	} else {
		log.Info("no mirror configured, running local-only")
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ШИНА СОБЫТИЙ И СИНХРОНИЗАТОР
	// ─────────────────────────────────────────────────────────────────────────
	bus := messaging.NewEventBus(log)
	defer bus.Close()

	_ = bus.SubscribeAll(func(event shared.Event) error {
		log.Debug("event", logger.F("payload", event.Payload()))
		return nil
	})

	sync := syncer.New(mirror, bus, log, cfg.Sync.DebounceWindow)
	defer sync.Close()

	// ─────────────────────────────────────────────────────────────────────────
	// 6. ДОМЕННЫЕ СПРАВОЧНИКИ И ВНЕШНИЕ КЛИЕНТЫ
	// ─────────────────────────────────────────────────────────────────────────
	catalog := curriculum.DefaultCatalog()
	levels := leveling.DefaultTable()
	clock := timeutil.System()

	var explainer query.Explainer
	if cfg.Tutor.APIKey != "" {
		tc := tutor.DefaultConfig(cfg.Tutor.APIKey)
		tc.BaseURL = cfg.Tutor.BaseURL
		tc.Model = cfg.Tutor.Model
		tc.Timeout = cfg.Tutor.Timeout
		tc.Logger = log
		explainer = tutor.NewClient(tc)
		log.Info("tutor client enabled", logger.String("model", cfg.Tutor.Model))
	} else {
		log.Info("no tutor API key, explanations will serve the fallback")
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. APPLICATION LAYER (Commands и Queries)
	// ─────────────────────────────────────────────────────────────────────────
	followHandler := command.NewFollowPeerHandler(store, sync, bus, clock)

	deps := httpserver.Dependencies{
		SignUp:           command.NewSignUpHandler(store, mirror, sync, bus, clock),
		LogIn:            command.NewLogInHandler(store, mirror, sync, clock),
		LogOut:           command.NewLogOutHandler(store, sync),
		ToggleProgress:   command.NewToggleProgressHandler(store, sync, bus, catalog, levels, clock),
		FollowPeer:       followHandler,
		RestoreProfile:   command.NewRestoreProfileHandler(store, sync, bus, clock),
		ProcessShareLink: command.NewProcessShareLinkHandler(store, followHandler),

		GetProfile:     query.NewGetProfileHandler(store, levels),
		GetStats:       query.NewGetStatsHandler(store, catalog),
		GetLevels:      query.NewGetLevelsHandler(levels),
		GetShareLink:   query.NewGetShareLinkHandler(store),
		GetPeerBoard:   query.NewGetPeerBoardHandler(store, levels),
		GetPeerProfile: query.NewGetPeerProfileHandler(store, catalog, levels),
		ExplainTopic:   query.NewExplainTopicHandler(explainer, catalog, log),

		Store:  store,
		Syncer: sync,
		Logger: log,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. HTTP-СЕРВЕР И GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	srv := httpserver.NewServer(httpserver.Config{
		Host:           cfg.HTTP.Host,
		Port:           cfg.HTTP.Port,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		ShareBaseURL:   cfg.HTTP.ShareBaseURL,
	}, deps)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("received signal, shutting down", logger.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	// Дожимаем незаписанные изменения в зеркало перед остановкой
	sync.Flush(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}
