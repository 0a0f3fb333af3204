package telegram

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Artem-be/HRTest/internal/domain"
	"github.com/Artem-be/HRTest/internal/infra/memory"
	"github.com/Artem-be/HRTest/internal/usecase"
)

type nopDelivery struct{}

func (nopDelivery) SendLead(ctx context.Context, lead domain.Lead) error { return nil }

type nopActivity struct{}

func (nopActivity) LogActivity(ctx context.Context, userID int64, action string) error { return nil }

type nopStats struct{}

func (nopStats) DailyStats(ctx context.Context) (domain.DailyStats, error) {
	return domain.DailyStats{}, nil
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	// запросы к API уходят в пустой URL и возвращают ошибку, она игнорируется
	bot := &tgbotapi.BotAPI{Client: &http.Client{}}
	return NewHandler(
		bot,
		usecase.NewDialog(),
		memory.NewSessionRepo(),
		usecase.NewDeliverer(nopDelivery{}, log),
		usecase.NewActivityLogger(nopActivity{}, log),
		usecase.NewFunnelUsecase(memory.NewFunnelRepo()),
		nopStats{},
		nil,
		log,
	)
}

func TestCallbackWithoutMessageIsIgnored(t *testing.T) {
	h := newTestHandler(t)

	// Telegram опускает message, когда сообщение с кнопкой слишком старое
	cb := &tgbotapi.CallbackQuery{ID: "1", From: &tgbotapi.User{ID: 5}, Data: "consultation"}
	h.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: cb})

	s, err := h.sessions.Get(5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Step != usecase.StepIdle {
		t.Fatalf("session must stay idle, got %s", s.Step)
	}
}

func TestHandleUpdateRecoversFromPanic(t *testing.T) {
	h := newTestHandler(t)

	// message без Chat в апдейте не встречается, но падение обработчика
	// не должно останавливать цикл
	m := &tgbotapi.Message{From: &tgbotapi.User{ID: 7}}
	h.handleUpdate(context.Background(), tgbotapi.Update{Message: m})
}
