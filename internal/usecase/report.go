package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Artem-be/HRTest/internal/domain"
)

// StatsSource — чтение суточного агрегата с бэкенда.
type StatsSource interface {
	DailyStats(ctx context.Context) (domain.DailyStats, error)
}

// Reporter собирает ежедневный отчет и шлет его оператору. Ошибка
// логируется и возвращается; повторов нет до следующего тика планировщика.
type Reporter struct {
	stats   StatsSource
	sender  domain.MessageSender
	adminID int64
	log     *slog.Logger
}

func NewReporter(stats StatsSource, sender domain.MessageSender, adminID int64, log *slog.Logger) *Reporter {
	return &Reporter{stats: stats, sender: sender, adminID: adminID, log: log}
}

// SendDailyReport возвращает число уникальных пользователей для вывода в CLI.
func (r *Reporter) SendDailyReport(ctx context.Context) (int, error) {
	st, err := r.stats.DailyStats(ctx)
	if err != nil {
		r.log.Error("daily stats fetch failed", "error", err)
		return 0, err
	}

	text := ReportText(st.UniqueUsers24h)
	if err := r.sender.SendText(r.adminID, text); err != nil {
		r.log.Error("daily report send failed", "admin_id", r.adminID, "error", err)
		return 0, err
	}

	r.log.Info("daily report sent", "unique_users", st.UniqueUsers24h)
	return st.UniqueUsers24h, nil
}

func ReportText(uniqueUsers int) string {
	return fmt.Sprintf("📊 Ежедневный отчёт\n\nЗа прошедшие сутки ботом воспользовались %d пользователей", uniqueUsers)
}
