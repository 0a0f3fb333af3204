package usecase

import (
	"context"
	"log/slog"
	"time"
)

// ActivityBackend — запись действия пользователя на бэкенде.
type ActivityBackend interface {
	LogActivity(ctx context.Context, userID int64, action string) error
}

const activityTimeout = 5 * time.Second

// ActivityLogger — best-effort: одна попытка, короткий таймаут, ошибка
// пишется в лог и глотается. Никогда не ретраится и не показывается
// пользователю.
type ActivityLogger struct {
	backend ActivityBackend
	log     *slog.Logger
	timeout time.Duration
}

func NewActivityLogger(backend ActivityBackend, log *slog.Logger) *ActivityLogger {
	return &ActivityLogger{backend: backend, log: log, timeout: activityTimeout}
}

func (a *ActivityLogger) Log(userID int64, action string) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	if err := a.backend.LogActivity(ctx, userID, action); err != nil {
		a.log.Warn("activity log failed", "user_id", userID, "action", action, "error", err)
	}
}
