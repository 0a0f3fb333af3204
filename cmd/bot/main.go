package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	telegramAdapter "github.com/Artem-be/HRTest/internal/adapter/telegram"
	"github.com/Artem-be/HRTest/internal/config"
	"github.com/Artem-be/HRTest/internal/infra/backendapi"
	"github.com/Artem-be/HRTest/internal/infra/memory"
	sqliteRepo "github.com/Artem-be/HRTest/internal/infra/sqlite"
	"github.com/Artem-be/HRTest/internal/logger"
	"github.com/Artem-be/HRTest/internal/scheduler"
	"github.com/Artem-be/HRTest/internal/usecase"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New("bot", cfg.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Error("bot init failed", "error", err)
		os.Exit(1)
	}
	bot.Debug = false
	log.Info("authorized", "username", bot.Self.UserName)

	// сессии: память по умолчанию, sqlite если задан SESSION_DB_PATH
	var sessions usecase.SessionRepository = memory.NewSessionRepo()
	if cfg.SessionDBPath != "" {
		repo, err := sqliteRepo.NewSessionRepo(cfg.SessionDBPath)
		if err != nil {
			log.Error("session sqlite init failed", "error", err)
			os.Exit(1)
		}
		sessions = repo
	}

	// воронка: sqlite по умолчанию, память если BOT_DB_PATH пуст
	var funnelRepo usecase.FunnelRepository = memory.NewFunnelRepo()
	if cfg.BotDBPath != "" {
		repo, err := sqliteRepo.NewFunnelRepo(cfg.BotDBPath)
		if err != nil {
			log.Error("funnel sqlite init failed", "error", err)
			os.Exit(1)
		}
		funnelRepo = repo
	}

	client := backendapi.NewClient(cfg.BackendURL)
	dialog := usecase.NewDialog()
	deliverer := usecase.NewDeliverer(client, log)
	activity := usecase.NewActivityLogger(client, log)
	funnel := usecase.NewFunnelUsecase(funnelRepo)

	sender := telegramAdapter.NewSender(bot)
	reporter := usecase.NewReporter(client, sender, cfg.AdminID, log)
	reportJob := scheduler.New(reporter, log, cfg.ReportInterval)

	adminIDs := make(map[int64]struct{}, len(cfg.AdminChatIDs)+1)
	adminIDs[cfg.AdminID] = struct{}{}
	for _, id := range cfg.AdminChatIDs {
		adminIDs[id] = struct{}{}
	}

	handler := telegramAdapter.NewHandler(bot, dialog, sessions, deliverer, activity, funnel, client, adminIDs, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return handler.Run(ctx) })
	g.Go(func() error { reportJob.Run(ctx); return nil })
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("bot stopped", "error", err)
		os.Exit(1)
	}
	log.Info("bot stopped")
}
