package scheduler

import (
	"context"
	"sync"

	"github.com/tanq16/scooper/internal/fetch"
	"github.com/tanq16/scooper/internal/utils"
)

// Task is anything the pool can run to a terminal outcome.
type Task interface {
	Execute(ctx context.Context) fetch.Outcome
}

// Run executes all tasks with at most workers running concurrently and
// streams outcomes in completion order, not submission order. Every task
// yields exactly one outcome. The channel closes once the pool drains.
//
// Cancelling ctx stops workers from picking up queued tasks; attempts
// already in flight finish their current try (best-effort shutdown).
func Run(ctx context.Context, tasks []Task, workers int) <-chan fetch.Outcome {
	log := utils.GetLogger("scheduler")
	if workers > len(tasks) {
		workers = len(tasks)
	}
	if workers < 1 {
		workers = 1
	}
	log.Debug().Int("tasks", len(tasks)).Int("workers", workers).Msg("Starting worker pool")

	taskCh := make(chan Task, len(tasks))
	for _, task := range tasks {
		taskCh <- task
	}
	close(taskCh)

	outcomeCh := make(chan fetch.Outcome, len(tasks))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			logger := log.With().Int("workerID", workerID).Logger()
			for task := range taskCh {
				select {
				case <-ctx.Done():
					logger.Debug().Msg("Worker stopping, context cancelled")
					return
				default:
				}
				// Detach cancellation so an in-flight attempt runs to its
				// own timeout instead of being cut mid-transfer.
				outcomeCh <- task.Execute(context.WithoutCancel(ctx))
			}
		}(i + 1)
	}

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()
	return outcomeCh
}
