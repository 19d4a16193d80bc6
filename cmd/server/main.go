package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adminpanel/internal/charts"
	"adminpanel/internal/config"
	"adminpanel/internal/database"
	"adminpanel/internal/handlers"
	"adminpanel/internal/logger"
	"adminpanel/internal/middleware"
	"adminpanel/internal/mockdata"
	"adminpanel/internal/storage"
	"adminpanel/internal/store"
	"adminpanel/internal/switchboard"
	"adminpanel/web"

	charmlog "github.com/charmbracelet/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}

func run(cfg *config.Config, log *charmlog.Logger) error {
	seed, err := mockdata.Default()
	if err != nil {
		return err
	}

	// Collections
	ids := store.NewIDSource(nil)
	var (
		users store.UserRepository
		tasks store.TaskRepository
	)
	switch cfg.Store {
	case "sqlite":
		db, err := database.New(cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()
		s := store.NewSQLite(db, ids)
		users, tasks = s.Users(), s.Tasks()
	default:
		m := store.NewMemory(ids)
		users, tasks = m.Users(), m.Tasks()
	}

	data, err := switchboard.NewData(seed, users, tasks)
	if err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}

	// Load templates
	templates, err := handlers.LoadTemplates(web.Templates())
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	rendererOpts := []charts.RendererOption{charts.WithCache(charts.NewTTLCache(cfg.ChartCacheTTL))}
	if cfg.ChartAssets != "" {
		rendererOpts = append(rendererOpts, charts.WithAssetsHost(cfg.ChartAssets))
	}
	renderer := charts.NewRenderer(rendererOpts...)

	cookies := storage.NewCookieStore(cfg.SessionSecret, cfg.SessionMaxAge, cfg.SecureCookie)
	sbMiddleware := middleware.NewSwitchboardMiddleware(cookies, data, renderer, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handlers.NewRouter(templates, sbMiddleware, log),
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting admin panel", "addr", srv.Addr, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
