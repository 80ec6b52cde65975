package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/cartstore/api/controllers"
	"github.com/angelmondragon/cartstore/api/routes"
	"github.com/angelmondragon/cartstore/internal/addtocart"
	"github.com/angelmondragon/cartstore/internal/cartsession"
	"github.com/angelmondragon/cartstore/internal/orders"
	"github.com/angelmondragon/cartstore/pkg/config"
	"github.com/angelmondragon/cartstore/pkg/instance"
	"github.com/angelmondragon/cartstore/pkg/logger"
	"github.com/angelmondragon/cartstore/pkg/metrics"
	"github.com/angelmondragon/cartstore/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "cartd"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "cartd",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "cartd stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(reg)

	ready := map[string]controllers.Pinger{}
	var queue orders.Enqueuer
	if cfg.Orders.Kind() == config.SubmitterQueue || cfg.Redis.Configured() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		queue = redisClient
		ready["redis"] = redisClient
	}

	submitter, err := orders.NewFromConfig(cfg.Orders, queue)
	if err != nil {
		return err
	}

	// the session outlives request contexts; it is closed explicitly below
	cart, err := cartsession.New(context.Background(), nil, submitter, logg, storeMetrics)
	if err != nil {
		return err
	}
	counter, err := addtocart.NewStore(context.Background(), logg, storeMetrics)
	if err != nil {
		cart.Close()
		return err
	}

	addr := ":" + cfg.App.Port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":       cfg.App.Env,
		"addr":      addr,
		"instance":  instance.GetID(),
		"submitter": cfg.Orders.Kind(),
	})
	logg.Info(logCtx, "starting cart server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Deps{
			Cart:     cart,
			Counter:  counter,
			Gatherer: reg,
			Ready:    ready,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			cart.Close()
			counter.Close()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := server.Shutdown(shutdownCtx)

	// closing the stores abandons any order still in flight
	cart.Close()
	counter.Close()

	logg.Info(logCtx, "cart server stopped")
	return multierr.Combine(shutdownErr, <-serveErr)
}
