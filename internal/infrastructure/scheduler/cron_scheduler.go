// Package scheduler ejecuta trabajos periódicos con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// Job trabajo periódico; ctx se cancela al detener el scheduler.
type Job func(ctx context.Context) error

// CronScheduler envuelve cron.Cron con logging y cancelación.
type CronScheduler struct {
	c      *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	log    *logger.Logger
}

// NewCronScheduler crea el scheduler en la zona horaria indicada. Un trabajo
// que sigue corriendo cuando toca la siguiente ejecución se salta.
func NewCronScheduler(timeZone string, log *logger.Logger) (*CronScheduler, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("scheduler: zona horaria %q: %w", timeZone, err)
	}
	cl := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	return &CronScheduler{
		c: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		ctx:    ctx,
		cancel: cancel,
		log:    log,
	}, nil
}

// Add registra job con una expresión cron ("@every 30s", "0 * * * *", ...).
func (s *CronScheduler) Add(schedule, name string, job Job) error {
	_, err := s.c.AddFunc(schedule, func() {
		if err := job(s.ctx); err != nil {
			s.log.Error().Err(err).Str("job", name).Msg("trabajo programado falló")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: %s %q: %w", name, schedule, err)
	}
	s.log.Info().Str("job", name).Str("schedule", schedule).Msg("trabajo programado")
	return nil
}

// Start arranca el scheduler en segundo plano.
func (s *CronScheduler) Start() {
	s.c.Start()
}

// Stop cancela los trabajos en curso y espera a que terminen o a que venza ctx.
func (s *CronScheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.c.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapta el logger de la aplicación a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
