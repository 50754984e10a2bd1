package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ibeloyar/printbee/internal/config"
	"github.com/ibeloyar/printbee/internal/keepalive"
	"github.com/ibeloyar/printbee/internal/repository/scriptstore"
	"github.com/ibeloyar/printbee/internal/service"
	"github.com/ibeloyar/printbee/pgk/auth"
	"github.com/ibeloyar/printbee/pgk/logger"
	"github.com/ibeloyar/printbee/pgk/retryablehttp"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/printbee/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - роутер прокси со всеми middleware; вынесен из Run для тестов
func NewRouter(cfg config.Config, s httpController.Service, lg *zap.SugaredLogger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", auth.AdminHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestSize(cfg.MaxBodyBytes))

	handlers := httpController.New(s, lg)
	return httpController.InitRoutes(router, handlers)
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("keep-alive time zone: %w", err)
	}
	window := keepalive.Window{From: cfg.KeepAliveFrom, To: cfg.KeepAliveTo, Location: loc}

	store, err := scriptstore.New(cfg.StoreURL, retryablehttp.RetryConfig{MaxRetries: cfg.StoreMaxRetries})
	if err != nil {
		return err
	}

	s := service.New(store, cfg.AdminPassword, window, lg)
	router := NewRouter(cfg, s, lg)

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ka := keepalive.New(store, window, cfg.KeepAliveInterval, lg)

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	ka.Start()

	select {
	case <-signalCtx.Done():
		lg.Info("shutting down server...")
	case err := <-serveErr:
		ka.Stop(keepalive.DefaultStopTimeout)
		return fmt.Errorf("server ListenAndServe error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	ka.Stop(keepalive.DefaultStopTimeout)

	lg.Info("server shutdown success")
	return nil
}
