package domain

import (
	"context"
	"time"
)

// ActivityEvent — одно действие пользователя (start, viewed_services и т.п.).
// Используется только для подсчета уникальных пользователей за сутки.
type ActivityEvent struct {
	UserID    int64
	Action    string
	Timestamp time.Time
}

// ActivityRepository проставляет Timestamp сам при вставке.
type ActivityRepository interface {
	Append(ctx context.Context, userID int64, action string) error
	DistinctUsersSince(ctx context.Context, since time.Time) (int, error)
}

// DailyStats — агрегат за последние 24 часа.
type DailyStats struct {
	UniqueUsers24h int    `json:"unique_users_24h"`
	Period         string `json:"period"`
}
