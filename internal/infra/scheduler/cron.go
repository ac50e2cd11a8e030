package scheduler

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled sweep. It returns how many items it handled.
type Job func(ctx context.Context) (int64, error)

// Scheduler runs named jobs on cron specs. A run that is still going when the
// next tick fires is skipped, so slow sweeps never overlap.
type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

func New(timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	logger := cronLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		ctx:     ctx,
		cancel:  cancel,
		timeout: timeout,
	}
}

// Register adds job under name. An empty spec disables the job.
func (s *Scheduler) Register(name, spec string, job Job) error {
	if spec == "" {
		slog.Info("Scheduled job disabled", "job", name)
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return errs.Wrapf(err, "invalid schedule %q for job %s", spec, name)
	}
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	n, err := job(ctx)
	elapsed := time.Since(start)
	metrics.JobRun(name, elapsed, err == nil)

	if err != nil {
		slog.Error("Scheduled job failed", "job", name, "duration", elapsed, "error", err.Error())
		return
	}
	if n > 0 {
		slog.Info("Scheduled job completed", "job", name, "processed", n, "duration", elapsed)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
