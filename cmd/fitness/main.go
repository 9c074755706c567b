package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	adapthttp "fitness/internal/adapter/http"
	"fitness/internal/adapter/memory"
	"fitness/internal/adapter/sqlstore"
	"fitness/internal/app"
	"fitness/internal/config"
	"fitness/internal/domain"
	"fitness/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := cfg.NewLogger()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	col := metrics.NewCollector("fitness", reg)

	store, closeStore, err := openStore(cfg, log, col)
	if err != nil {
		log.WithError(err).WithField("store", cfg.Store).Fatal("open store")
	}
	defer func() { _ = closeStore() }()

	seedOnly := len(os.Args) > 1 && os.Args[1] == "seed"
	if seedOnly || cfg.SeedOnStart {
		if _, err := app.NewSeedService(store, log).Seed(context.Background(), time.Now()); err != nil {
			log.WithError(err).Fatal("seed store")
		}
		if seedOnly {
			return
		}
	}

	weightSvc := app.NewWeightService(store)
	calorieSvc := app.NewCalorieService(store)
	tdeeSvc := app.NewTdeeService(store, store, log).WithMetrics(col)
	chartsSvc := app.NewChartsService(store, store)

	h := adapthttp.New(weightSvc, calorieSvc, tdeeSvc, chartsSvc, log).WithMetrics(col, reg).Handler()
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("stopped")
}

func openStore(cfg config.Config, log logrus.FieldLogger, col *metrics.Collector) (domain.Store, func() error, error) {
	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("using in-memory store; data is lost on exit")
		return memory.New(), func() error { return nil }, nil
	case config.StorePostgres:
		s, err := sqlstore.Open(sqlstore.DriverPostgres, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		return s.WithMetrics(col), s.Close, nil
	default:
		s, err := sqlstore.Open(sqlstore.DriverSQLite, cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return s.WithMetrics(col), s.Close, nil
	}
}
