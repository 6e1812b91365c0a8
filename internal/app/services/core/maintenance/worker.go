package maintenance

import (
	"medcalc-service/internal/app/config"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@every 10m"

// SessionPruner drops per-session state idle for longer than idle.
type SessionPruner interface {
	Prune(idle time.Duration) int
}

// Pruner forgets state that has gone stale, such as expired rate limits.
type Pruner interface {
	Prune()
}

// Worker periodically drops per-device state the BFF no longer needs.
type Worker struct {
	log      *zap.Logger
	spec     string
	idle     time.Duration
	sessions []SessionPruner
	pruners  []Pruner
	cron     *cron.Cron
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, sessions []SessionPruner, pruners ...Pruner) *Worker {
	return &Worker{
		log:      log,
		spec:     cfg.App.PruneCronSpec,
		idle:     time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
		sessions: sessions,
		pruners:  pruners,
	}
}

func (w *Worker) Start() {
	c := cron.New()
	_, err := c.AddFunc(w.spec, w.runOnce)
	if err != nil {
		w.log.Warn("maintenance.worker: invalid cron spec; falling back",
			zap.String("spec", w.spec),
			zap.String("fallback", fallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, w.runOnce)
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running prune to finish.
func (w *Worker) Stop() {
	if w.cron == nil {
		return
	}
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *Worker) runOnce() {
	removed := 0
	for _, sessions := range w.sessions {
		removed += sessions.Prune(w.idle)
	}
	for _, pruner := range w.pruners {
		pruner.Prune()
	}
	w.log.Info("maintenance.worker: pruned idle state",
		zap.Int("removed_entries", removed),
		zap.Duration("idle", w.idle),
	)
}
