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

	"github.com/gin-gonic/gin"
	"github.com/gogotex/docstore/internal/config"
	"github.com/gogotex/docstore/internal/database"
	"github.com/gogotex/docstore/internal/document/handler"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/internal/document/service"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/gogotex/docstore/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the document API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "path to a .env file (default ./.env when present)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger.Init(cfg.LogLevel)
	if cfg.Server.Environment == "development" {
		logger.SetOutput(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Infof("config loaded: backend=%s rate_limit=%v", cfg.Store.Backend, cfg.RateLimit.Enabled)

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	r := newRouter(cfg, service.NewRepository(store), prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("docstore listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newRouter(cfg *config.Config, svc service.Service, reg prometheus.Registerer, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	handler.RegisterSwagger(r)
	handler.RegisterDocumentRoutes(r, svc)

	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}

// openStore connects the configured backend. When it cannot be reached the
// service still starts on a memory store, matching the previous behaviour of
// the document service.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func()) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("cannot connect to MongoDB (%v), using memory store", err)
			break
		}
		logger.Infof("using MongoDB store %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		return repository.NewMongoStore(col), func() { _ = client.Disconnect(context.Background()) }
	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB, 5*time.Second)
		if err != nil {
			logger.Warnf("cannot connect to Redis (%v), using memory store", err)
			break
		}
		logger.Infof("using Redis store at %s", cfg.Redis.Addr())
		return repository.NewRedisStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }
	}
	return repository.NewMemoryStore(), func() {}
}
