package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/authlist/internal/adapters/handler/http"
	mongorepo "github.com/vncsmyrnk/authlist/internal/adapters/repository/mongo"
	"github.com/vncsmyrnk/authlist/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/authlist/internal/config"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
	"github.com/vncsmyrnk/authlist/internal/core/services"
	"github.com/vncsmyrnk/authlist/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	flag.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "Store driver (postgres or mongo)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logr, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logr.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		logr.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeRepo()

	clock := services.SystemClock()
	authorizationService := services.NewAuthorizationService(
		services.NewValidator(clock),
		services.NewRecordStore(repo, clock, logr),
	)

	authorizedUserHandler := http.NewAuthorizedUserHandler(authorizationService)
	handler := http.NewHandler(authorizedUserHandler, logr, cfg.RequestTimeout)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	go func() {
		logr.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("shutdown failed", zap.Error(err))
	}
}

func openRepository(ctx context.Context, cfg config.Config) (ports.AuthorizedUserRepository, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Postgres.ConnString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(connectCtx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewAuthorizedUserRepository(db), func() { db.Close() }, nil

	case config.DriverMongo:
		client, err := mongorepo.Connect(connectCtx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return mongorepo.NewAuthorizedUserRepository(client.Database(cfg.Mongo.Database)), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
