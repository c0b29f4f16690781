package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dolar-hoy/internal/api/http/middleware"
	rateshttp "dolar-hoy/internal/api/http/rates"
	"dolar-hoy/internal/clients/ambito"
	applog "dolar-hoy/internal/logger"
	"dolar-hoy/internal/repository/migrations"
	"dolar-hoy/internal/repository/postgresql"
	"dolar-hoy/internal/service/logger"
	ratessvc "dolar-hoy/internal/service/rates"
	"dolar-hoy/internal/service/retention"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	applog.Configure(logrus.StandardLogger(), "info", os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logrus.WithError(err).Fatal("dolarhoy stopped")
	}
}

func run(ctx context.Context) error {
	// env
	cfg, envLoaded, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := applog.New(cfg.LogLevel)
	if !envLoaded {
		log.Debug("no .env file, using process environment")
	}

	// rates
	client := ambito.New(nil)
	ratesService := ratessvc.New(client, ambito.Endpoints(), log.WithField("component", "rates"))

	g, gctx := errgroup.WithContext(ctx)

	// optional request audit log
	var reqLogger logger.RequestLogger = logger.Nop{}
	if cfg.DatabaseURL != "" {
		dbCtx, cancelDB := context.WithTimeout(ctx, 5*time.Second)
		defer cancelDB()

		pool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		if err := migrations.New(pool).Setup(dbCtx); err != nil {
			return fmt.Errorf("ensure tables: %w", err)
		}

		reqLogStorage := postgresql.NewRequestLogStorage(pool)
		reqLogger = logger.New(reqLogStorage)

		scheduler, err := newRetentionScheduler(gctx, cfg, retention.New(reqLogStorage, cfg.RetentionDays, log.WithField("component", "retention")), log)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return runCron(gctx, scheduler)
		})
	} else {
		log.Info("DATABASE_URL is empty, request audit log disabled")
	}

	ratesHandler := rateshttp.New(ratesService, reqLogger, log.WithField("component", "http"))

	mux := http.NewServeMux()
	ratesHandler.Register(mux)

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.HTTPPort, middleware.AccessLog(log)(mux), log)
	})

	log.Info("running, stop with Ctrl+C / SIGTERM")
	return g.Wait()
}

func newRetentionScheduler(ctx context.Context, cfg Config, pruner *retention.Service, log logrus.FieldLogger) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", cfg.Location, err)
	}
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)

	_, err = scheduler.AddFunc(cfg.RetentionCron, func() {
		if _, err := pruner.Prune(ctx); err != nil {
			log.WithError(err).Error("scheduled prune failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add cron func: %w", err)
	}
	return scheduler, nil
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, addr string, h http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{Addr: addr, Handler: h}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	log.WithField("addr", addr).Info("HTTP listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
