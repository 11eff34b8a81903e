package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lildude/athletedash/internal/cache"
	"github.com/lildude/athletedash/internal/config"
	"github.com/lildude/athletedash/internal/database"
	"github.com/lildude/athletedash/internal/handlers/admin"
	"github.com/lildude/athletedash/internal/handlers/athlete"
	"github.com/lildude/athletedash/internal/logger"
	"github.com/lildude/athletedash/internal/router"
	"github.com/lildude/athletedash/internal/sessions"
	"github.com/lildude/athletedash/internal/views"
	"github.com/sirupsen/logrus"
)

func main() {
	createAdmin := flag.String("create-admin", "", "create an admin as user:password:organization and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.NewLogger(cfg.LogLevel, cfg.Env)

	if err := run(cfg, log, *createAdmin); err != nil {
		log.WithError(err).Fatal("athletedash stopped")
	}
}

func run(cfg *config.Config, log logrus.FieldLogger, createAdmin string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if createAdmin != "" {
		parts := strings.SplitN(createAdmin, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return errors.New("-create-admin wants user:password:organization")
		}
		user, org, err := database.CreateAdmin(ctx, db, parts[0], parts[1], parts[2])
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"user_id": user.ID, "org_id": org.ID}).Info("admin created")
		return nil
	}

	athletes := &athlete.Handler{DB: db, Log: log, CascadeDelete: cfg.CascadeDeleteWeights}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.OrgCacheExpiry())
		if err != nil {
			// The dashboard works without the cache, only slower.
			log.WithError(err).Warn("org name cache disabled")
		} else {
			defer rc.Close()
			athletes.OrgNames = rc
		}
	}

	renderer, err := views.New()
	if err != nil {
		return err
	}
	store, err := sessions.NewStore([]byte(cfg.SessionKey), cfg.Dev())
	if err != nil {
		return err
	}
	athletes.Views = renderer
	athletes.Sessions = store
	login := &admin.Handler{DB: db, Views: renderer, Sessions: store, Log: log}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(db, log, store, login, athletes),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "env": cfg.Env}).Info("starting server")
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
