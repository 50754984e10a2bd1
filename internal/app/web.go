package app

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/ibeloyar/printbee/internal/client"
	"github.com/ibeloyar/printbee/internal/config"
	"github.com/ibeloyar/printbee/internal/web"
	"github.com/ibeloyar/printbee/pgk/logger"
	"go.uber.org/zap"
)

const sessionMaxAge = 12 * 60 * 60

// NewSessionStore - подписанная и зашифрованная cookie-сессия; ключи выводятся из одного секрета
func NewSessionStore(cfg config.WebConfig) *sessions.CookieStore {
	hashKey := sha256.Sum256([]byte("printbee-hash:" + cfg.SessionKey))
	blockKey := sha256.Sum256([]byte("printbee-block:" + cfg.SessionKey))

	store := sessions.NewCookieStore(hashKey[:], blockKey[:])
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.CookieSecure
	store.Options.SameSite = http.SameSiteLaxMode
	store.MaxAge(sessionMaxAge)

	return store
}

func NewWebRouter(api web.API, store sessions.Store, lg *zap.SugaredLogger) (*chi.Mux, error) {
	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := web.New(api, store, templates, lg)
	return web.InitRoutes(router, handlers), nil
}

func RunWeb(cfg config.WebConfig, lg *zap.SugaredLogger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	api := client.New(cfg.APIAddress, nil)

	router, err := NewWebRouter(api, NewSessionStore(cfg), lg)
	if err != nil {
		return fmt.Errorf("web templates: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting web server on %s, proxy %s", cfg.RunAddress, cfg.APIAddress)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-signalCtx.Done():
		lg.Info("shutting down web server...")
	case err := <-serveErr:
		return fmt.Errorf("web server ListenAndServe error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (web server) error: %v", err)
	}

	lg.Info("web server shutdown success")
	return nil
}
