package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Artem-be/HRTest/internal/usecase"
)

// Scheduler раз в интервал запускает ежедневный отчет. Ошибка тика
// логируется внутри Reporter; следующая попытка — на следующем тике.
type Scheduler struct {
	reporter *usecase.Reporter
	log      *slog.Logger
	interval time.Duration
}

func New(reporter *usecase.Reporter, log *slog.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{reporter: reporter, log: log, interval: interval}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("report scheduler started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("report scheduler stopping")
			return
		case <-ticker.C:
			_, _ = s.reporter.SendDailyReport(ctx)
		}
	}
}
