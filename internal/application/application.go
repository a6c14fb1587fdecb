package application

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"tarkov_market/internal/config"
	"tarkov_market/internal/domain/service/acquisition"
	"tarkov_market/internal/domain/service/questline"
	"tarkov_market/internal/domain/service/tracker"
	"tarkov_market/internal/infrastructure/snapshot"
	"tarkov_market/internal/infrastructure/tarkovdev"
	"tarkov_market/internal/server"
	"tarkov_market/internal/worker"
	"tarkov_market/pkg/application/connectors"
	"tarkov_market/pkg/application/modules"
	"tarkov_market/pkg/httpx"
	"tarkov_market/pkg/logx"
	"tarkov_market/pkg/middlewarex"
)

const (
	appName = "tarkov-market"

	httpShutdownTimeout       = 10 * time.Second
	httpReadHeaderTimeout     = 5 * time.Second
	httpLogFieldMaxLen        = 4096
	asynqQueueDefaultPriority = 1
)

func Run(ctx context.Context, version string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	redisConnector := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer redisConnector.Close(ctx)

	client := tarkovdev.NewClient(cfg.Tarkov.APIURL, newHTTPClient(cfg.Tarkov))

	store := snapshot.NewStore().
		WithRedis(redisConnector.Client(ctx)).
		WithTTL(cfg.Refresh.SnapshotTTL)

	questlineService := questline.NewService()
	engine := acquisition.NewEngine(cfg.Refresh.Concurrency)

	trackerService := tracker.NewService(client, store, questlineService, engine).
		WithBundledSources(cfg.Tarkov.BundledSources)

	refreshWorker := worker.NewRefreshWorker(trackerService)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Refresh.Bootstrap {
		g.Go(func() error {
			if err := refreshWorker.Bootstrap(ctx); err != nil {
				// A failed bootstrap is not fatal, the cron retries.
				logger(ctx).Error("bootstrap refresh failed", logx.Error(err))
			}

			return nil
		})
	}

	modules.HTTPServer{ShutdownTimeout: httpShutdownTimeout}.
		Run(ctx, g, newHTTPServer(ctx, cfg, trackerService, questlineService))

	modules.ProbeServer{
		Name:          appName,
		Version:       version,
		ListenAddress: cfg.Server.ProbeAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Server.MetricsAddress}.Run(ctx, g)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(ctx, g,
		modules.AsynqQueues{worker.QueueDefault: asynqQueueDefaultPriority},
		modules.AsynqHandler{
			Pattern: worker.TaskTypeRefreshCatalog,
			Handle:  refreshWorker.HandleRefresh,
		},
	)

	modules.AsynqScheduler{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(ctx, g,
		modules.AsynqSchedule{
			Cronspec: cfg.Refresh.Cronspec,
			Task:     worker.NewRefreshTask(),
			Queue:    worker.QueueDefault,
		},
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newHTTPClient(cfg config.Tarkov) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport

	if cfg.LogRequests {
		transport = httpx.NewLoggingRoundTripper(
			transport,
			httpx.WithLogFieldMaxLen(httpLogFieldMaxLen),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		)
	}

	if cfg.APIToken != "" {
		transport = httpx.NewAuthBearerRoundTripper(
			transport,
			tarkovdev.NewStaticTokenAuthenticator(cfg.APIToken),
		)
	}

	return &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: transport,
	}
}

func newHTTPServer(
	ctx context.Context,
	cfg config.Config,
	trackerService *tracker.Service,
	questlineService *questline.Service,
) *http.Server {
	router := chi.NewRouter()

	masker := logx.NewSensitiveDataMasker()

	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, httpLogFieldMaxLen),
		middlewarex.ResponseLogging(masker, httpLogFieldMaxLen),
	)

	srv := server.NewServer(
		server.NewQuestlineServer(trackerService, questlineService),
		server.NewItemServer(trackerService),
	)
	srv.RegisterRoutes(router)

	//nolint:exhaustruct
	return &http.Server{
		Addr:              cfg.Server.HTTPAddress,
		Handler:           http.TimeoutHandler(router, cfg.Server.RequestTimeout, "request timed out"),
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
