package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"goban/internal/adapters"
	"goban/internal/bootstrap"
	gameDelivery "goban/internal/delivery/game"
	ownMiddleware "goban/internal/middleware"
	repo "goban/internal/repository"
	gameuc "goban/internal/usecase/game"
)

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		NewLogger(false).Fatalw("Failed to setup configuration", "error", err)
	}
	logger := NewLogger(cfg.LogDebug)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	redisAdapter := adapters.NewAdapterRedis(cfg, logger)
	if err := redisAdapter.Init(ctx); err != nil {
		logger.Fatalw("Failed to initialize Redis", "error", err)
	}
	defer redisAdapter.Close(ctx)

	hub := gameDelivery.NewHub(logger)
	publishers := []gameuc.EventPublisher{hub}
	if redisAdapter.Enabled() {
		publishers = append(publishers, repo.NewRedisEventPublisher(redisAdapter.GetClient(), cfg.RedisChannel, logger))
	}

	gameUC, err := gameuc.NewGameUseCase(logger, cfg.BoardWidth, cfg.BoardHeight, cfg.Komi, publishers...)
	if err != nil {
		logger.Fatalw("Invalid board configuration", "error", err)
	}
	go gameUC.Run(ctx)

	r := chi.NewRouter()
	Router(r, cfg.IsLocalCors, gameDelivery.NewGameHandler(*cfg, logger, gameUC, hub))

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("Failed to shut down server", "error", err)
		}
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("Failed to start server", "error", err)
	}
}

func NewLogger(debug bool) *zap.SugaredLogger {
	build := zap.NewProduction
	if debug {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func Router(r *chi.Mux, isLocalCors bool, game *gameDelivery.GameHandler) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	game.Router(r)
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
