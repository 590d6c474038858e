package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetslot/config"
	"meetslot/services/meeting"
	"meetslot/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the task queue DB.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitPrecomputeWorker runs the async worker in background. The returned
// server must be shut down by the caller.
func InitPrecomputeWorker(svc meeting.MeetingService, logger *zap.Logger) *asynq.Server {
	concurrency := config.AppConfig.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePrecomputeSlots, HandlePrecomputeTask(svc, logger))

	// Start async worker with retry logic
	go func() {
		logger.Info("precompute worker: starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("precompute worker: failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("precompute worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandlePrecomputeTask resolves the payload's request, which fills the result
// cache as a side effect. Malformed payloads are not retried.
func HandlePrecomputeTask(svc meeting.MeetingService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParsePrecomputePayload(task)
		if err != nil {
			logger.Error("precompute: invalid payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}

		res, err := svc.QueryForDate(ctx, p.Date, p.Request.ToRequest())
		if errors.Is(err, meeting.ErrInvalidDate) {
			logger.Error("precompute: invalid date", zap.String("date", p.Date))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err != nil {
			logger.Error("precompute: query failed", zap.String("date", p.Date), zap.Error(err))
			return err
		}

		logger.Info("precompute: done",
			zap.String("date", res.Date),
			zap.Int("ranges", len(res.Ranges)),
			zap.Bool("cached", res.Cached))
		return nil
	}
}
