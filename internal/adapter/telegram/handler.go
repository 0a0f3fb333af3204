package telegram

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/Artem-be/HRTest/internal/usecase"
)

const (
	adminFunnelBtn = "Воронка"
	adminStatsBtn  = "Статистика"
)

type Handler struct {
	bot       *tgbotapi.BotAPI
	dialog    *usecase.Dialog
	sessions  usecase.SessionRepository
	deliverer *usecase.Deliverer
	activity  *usecase.ActivityLogger
	funnel    *usecase.FunnelUsecase
	stats     usecase.StatsSource
	adminIDs  map[int64]struct{}
	logger    *slog.Logger
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	dialog *usecase.Dialog,
	sessions usecase.SessionRepository,
	deliverer *usecase.Deliverer,
	activity *usecase.ActivityLogger,
	funnel *usecase.FunnelUsecase,
	stats usecase.StatsSource,
	adminIDs map[int64]struct{},
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		dialog:    dialog,
		sessions:  sessions,
		deliverer: deliverer,
		activity:  activity,
		funnel:    funnel,
		stats:     stats,
		adminIDs:  adminIDs,
		logger:    logger,
	}
}

// Run крутит цикл long-poll до отмены контекста. Обработчики не должны
// блокировать цикл: доставка заявки и логирование активности уходят в
// отдельные горутины.
func (h *Handler) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	// паника одного апдейта не должна останавливать цикл для всех
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("handler panic", "panic", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

func (h *Handler) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	if m.From == nil {
		return
	}
	userID := m.From.ID
	chatID := m.Chat.ID
	text := m.Text
	h.logger.Info("message received", "user_id", userID, "text", text)

	if text == "/admin" {
		if !h.isAdmin(userID) {
			h.sendText(chatID, "Доступ запрещен")
			h.logger.Warn("admin denied", "user_id", userID)
			return
		}
		msg := tgbotapi.NewMessage(chatID, "Админ-меню")
		msg.ReplyMarkup = inlineKeyboard([]string{adminFunnelBtn, adminStatsBtn})
		_, _ = h.bot.Send(msg)
		return
	}

	s, err := h.sessions.Get(userID)
	if err != nil {
		h.logger.Error("session load failed", "user_id", userID, "error", err)
		h.sendText(chatID, "Что-то пошло не так, попробуйте еще раз")
		return
	}

	var reply usecase.Reply
	if text == "/start" {
		reply = h.dialog.Start(s)
	} else {
		reply = h.dialog.Handle(userID, s, text)
	}
	h.logger.Info("state transition", "user_id", userID, "step", s.Step)

	if reply.Lead != nil {
		// форма завершена: состояние очищено до доставки, исход заявки
		// его уже не меняет
		if err := h.sessions.Clear(userID); err != nil {
			h.logger.Error("session clear failed", "user_id", userID, "error", err)
		}
	} else if err := h.sessions.Put(userID, s); err != nil {
		h.logger.Error("session save failed", "user_id", userID, "error", err)
	}

	h.applyReply(ctx, chatID, userID, reply)
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	_, _ = h.bot.Request(tgbotapi.NewCallback(cb.ID, ""))
	if cb.Message == nil {
		// Telegram не присылает message, если сообщение с кнопкой слишком старое
		h.logger.Warn("callback without message", "user_id", userID, "data", cb.Data)
		return
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data

	if h.isAdmin(userID) {
		switch data {
		case adminFunnelBtn:
			labels, values := h.funnel.GraphData()
			if err := h.sendFunnelChart(chatID, labels, values); err != nil {
				h.logger.Error("funnel chart failed", "error", err)
				h.sendText(chatID, h.funnel.Chart())
			}
			return
		case adminStatsBtn:
			h.sendDailyStats(ctx, chatID)
			return
		}
	}

	s, err := h.sessions.Get(userID)
	if err != nil {
		h.logger.Error("session load failed", "user_id", userID, "error", err)
		return
	}
	reply := h.dialog.SelectService(s, data)
	h.logger.Info("state transition", "user_id", userID, "step", s.Step, "service", s.Service)
	if err := h.sessions.Put(userID, s); err != nil {
		h.logger.Error("session save failed", "user_id", userID, "error", err)
	}
	h.applyReply(ctx, chatID, userID, reply)
}

// applyReply отправляет ответ, пишет активность и воронку. Доставка лида
// уходит в горутину: повторы задерживают только этот диалог.
func (h *Handler) applyReply(ctx context.Context, chatID, userID int64, r usecase.Reply) {
	if r.Action != "" {
		go h.activity.Log(userID, r.Action)
	}
	if h.funnel != nil {
		h.funnel.Reach(userID, r.FunnelStep)
	}

	if r.Lead != nil {
		lead := *r.Lead
		go func() {
			ok, detail := h.deliverer.Submit(ctx, lead)
			if ok {
				h.sendTextWithMainMenu(chatID, usecase.SubmitSuccessText(lead))
				return
			}
			h.logger.Error("lead delivery failed", "tg_id", lead.TgID, "detail", detail)
			h.sendTextWithMainMenu(chatID, usecase.SubmitFailedText())
		}()
		return
	}

	switch {
	case r.ShowServices:
		msg := tgbotapi.NewMessage(chatID, r.Text)
		msg.ReplyMarkup = servicesKeyboard()
		_, _ = h.bot.Send(msg)
	case r.ShowMainMenu:
		h.sendTextWithMainMenu(chatID, r.Text)
	default:
		h.sendText(chatID, r.Text)
	}
}

func (h *Handler) sendDailyStats(ctx context.Context, chatID int64) {
	rctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	st, err := h.stats.DailyStats(rctx)
	if err != nil {
		h.logger.Error("daily stats fetch failed", "error", err)
		h.sendText(chatID, "Статистика недоступна")
		return
	}
	h.sendText(chatID, usecase.ReportText(st.UniqueUsers24h))
}

func (h *Handler) isAdmin(userID int64) bool {
	if len(h.adminIDs) == 0 {
		return false
	}
	_, ok := h.adminIDs[userID]
	return ok
}

func (h *Handler) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = h.bot.Send(msg)
}

func (h *Handler) sendTextWithMainMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = mainKeyboard()
	_, _ = h.bot.Send(msg)
}

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(usecase.ServicesBtn)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func servicesKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(usecase.Services))
	for _, svc := range usecase.Services {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(svc.Label, svc.ID),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func inlineKeyboard(opts []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(o, o),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Реализация отправителя для юзкейсов
type Sender struct{ bot *tgbotapi.BotAPI }

func NewSender(bot *tgbotapi.BotAPI) *Sender { return &Sender{bot: bot} }

func (s *Sender) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := s.bot.Send(msg)
	return err
}

func (h *Handler) sendFunnelChart(chatID int64, labels []string, values []int) error {
	bars := make([]chart.Value, 0, len(labels))
	maxVal := 0
	for i := range labels {
		v := values[i]
		if v > maxVal {
			maxVal = v
		}
		bars = append(bars, chart.Value{Value: float64(v), Label: labels[i]})
	}
	// Избежать ошибки invalid data range при нулевых значениях
	yMax := float64(maxVal)
	if yMax <= 0 {
		yMax = 1
	}
	graph := chart.BarChart{
		Width:    1100,
		Height:   600,
		BarWidth: 56,
		Background: chart.Style{Padding: chart.Box{
			Top:    50,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}
	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return err
	}
	fname := "funnel_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".png"
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: fname, Bytes: buf.Bytes()})
	_, err := h.bot.Send(photo)
	return err
}
