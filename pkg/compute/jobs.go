// Package compute runs independent computations on a bounded set of
// workers.
package compute

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// JobStatus represents the status of a computation job
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusCancelled JobStatus = "cancelled"
)

// JobFunc computes job n of a batch.
type JobFunc func(ctx context.Context, n int) error

// JobManager runs batches of jobs with at most Workers() of them in flight.
// A JobManager may be shared by concurrent batches; the limit applies per
// batch.
type JobManager struct {
	workers int

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	cancelled atomic.Int64
}

// NewJobManager creates a new job manager
func NewJobManager(workers int) (*JobManager, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", workers)
	}
	return &JobManager{workers: workers}, nil
}

// Workers returns the concurrency limit.
func (jm *JobManager) Workers() int {
	return jm.workers
}

// Run executes fn for n = 0..count-1. The first failing job cancels the
// context of the others; jobs not yet started are skipped and counted as
// cancelled. Run returns the first error.
func (jm *JobManager) Run(ctx context.Context, count int, fn JobFunc) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jm.workers)

	for n := 0; n < count; n++ {
		jm.submitted.Add(1)
		g.Go(func() error {
			if gctx.Err() != nil {
				jm.cancelled.Add(1)
				return gctx.Err()
			}
			if err := fn(gctx, n); err != nil {
				jm.failed.Add(1)
				return fmt.Errorf("job %d: %w", n, err)
			}
			jm.completed.Add(1)
			return nil
		})
	}

	return g.Wait()
}

// Map runs fn for n = 0..count-1 on jm and collects the results in index
// order.
func Map[T any](ctx context.Context, jm *JobManager, count int, fn func(ctx context.Context, n int) (T, error)) ([]T, error) {
	results := make([]T, count)
	err := jm.Run(ctx, count, func(ctx context.Context, n int) error {
		v, err := fn(ctx, n)
		if err != nil {
			return err
		}
		results[n] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetStatistics returns job manager statistics
func (jm *JobManager) GetStatistics() JobStatistics {
	stats := JobStatistics{
		SubmittedJobs: jm.submitted.Load(),
		CompletedJobs: jm.completed.Load(),
		FailedJobs:    jm.failed.Load(),
		CancelledJobs: jm.cancelled.Load(),
	}
	stats.RunningJobs = stats.SubmittedJobs - stats.CompletedJobs - stats.FailedJobs - stats.CancelledJobs
	return stats
}

// JobStatistics represents job manager statistics
type JobStatistics struct {
	SubmittedJobs int64 `json:"submitted_jobs"`
	RunningJobs   int64 `json:"running_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	CancelledJobs int64 `json:"cancelled_jobs"`
}

// Status reports the status a batch ended in.
func (s JobStatistics) Status() JobStatus {
	switch {
	case s.RunningJobs > 0:
		return StatusRunning
	case s.FailedJobs > 0:
		return StatusFailed
	case s.CancelledJobs > 0:
		return StatusCancelled
	case s.SubmittedJobs == 0:
		return StatusQueued
	default:
		return StatusCompleted
	}
}
