package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqSchedule struct {
	Cronspec string
	Task     *asynq.Task
	Queue    string
}

// AsynqScheduler enqueues tasks into asynq queues on cron schedules.
type AsynqScheduler struct {
	RedisUsername string
	RedisPassword string
	RedisAddress  string
	RedisDB       int
}

func (s AsynqScheduler) Run(
	ctx context.Context,
	g *errgroup.Group,
	schedules ...AsynqSchedule,
) {
	g.Go(func() error {
		redisConnection := asynq.RedisClientOpt{
			Addr:     s.RedisAddress,
			Username: s.RedisUsername,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		}

		scheduler := asynq.NewScheduler(redisConnection, &asynq.SchedulerOpts{})

		for _, schedule := range schedules {
			opts := []asynq.Option{}
			if schedule.Queue != "" {
				opts = append(opts, asynq.Queue(schedule.Queue))
			}

			if _, err := scheduler.Register(schedule.Cronspec, schedule.Task, opts...); err != nil {
				return fmt.Errorf("scheduler.Register(%s): %w", schedule.Task.Type(), err)
			}
		}

		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("scheduler.Start: %w", err)
		}

		logger(ctx).Info("asynq scheduler started", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		<-ctx.Done()

		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})
}
