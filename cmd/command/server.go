package command

import (
	"context"
	"fmt"

	"clinic_queue/internal/config"
	"clinic_queue/internal/directory"
	"clinic_queue/internal/handlers"
	"clinic_queue/internal/metrics"
	"clinic_queue/internal/queue"
	"clinic_queue/internal/storage"
	"clinic_queue/internal/tasks"

	_ "clinic_queue/docs"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run queue server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(ctx, cfg)
		},
	}
}

func (cmd Server) main(ctx context.Context, cfg *config.Config) {
	db, err := storage.ConnectDatabase(cfg.Database.Postgres, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}
	if err := storage.Migrate(db); err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to migrate"))
		return
	}

	redisClient, err := storage.InitRedis(ctx, cfg.Database.Redis, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).WithError(err).Warn("server : running without directory cache")
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			cmd.Logger.WithContext(ctx).WithError(err).Error("server : failed to close redis")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine := queue.NewEngine(
		queue.WithRepository(storage.NewEntryRepository(db)),
		queue.WithWaitPolicy(queue.WaitPolicy{ConsultationMinutes: cfg.Queue.ConsultationMinutes}),
		queue.WithStrictAdvance(cfg.Queue.StrictAdvance),
		queue.WithLogger(cmd.Logger),
		queue.WithMetrics(metrics.NewQueueMetrics(registry)),
	)
	if _, err := engine.Load(ctx); err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to load queue state"))
		return
	}

	scheduler, err := tasks.InitScheduler(cfg.Queue.CleanupSchedule, engine, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to start scheduler"))
		return
	}
	defer func() {
		<-scheduler.Stop().Done()
		cmd.Logger.Info("cron scheduler stopped")
	}()

	router := handlers.NewRouter(handlers.RouterConfig{
		AppEnv:     cfg.AppEnv,
		Engine:     engine,
		Directory:  directory.New(storage.NewDirectoryRepository(db), redisClient, cfg.Database.Redis.CacheTTL, cmd.Logger),
		Gatherer:   registry,
		AuthSecret: []byte(cfg.Auth.AccessSecret),
		Logger:     cmd.Logger,
	})

	if err := handlers.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port), router, cmd.Logger); err != nil {
		cmd.Logger.WithContext(ctx).Error(err)
	}
}
