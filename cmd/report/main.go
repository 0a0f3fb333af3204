package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	telegramAdapter "github.com/Artem-be/HRTest/internal/adapter/telegram"
	"github.com/Artem-be/HRTest/internal/config"
	"github.com/Artem-be/HRTest/internal/infra/backendapi"
	"github.com/Artem-be/HRTest/internal/logger"
	"github.com/Artem-be/HRTest/internal/usecase"
)

// Разовая отправка ежедневного отчета оператору. Токен и id оператора
// берутся из флагов, при их отсутствии — из окружения.
func main() {
	botToken := flag.String("bot-token", "", "Telegram Bot Token (default: BOT_TOKEN env)")
	adminID := flag.Int64("admin-id", 0, "Admin Telegram ID (default: ADMIN_ID env)")
	flag.Parse()

	cfg, err := config.LoadReport()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}
	if *botToken != "" {
		cfg.BotToken = *botToken
	}
	if *adminID != 0 {
		cfg.AdminID = *adminID
	}
	if cfg.BotToken == "" {
		fmt.Println("❌ Не указан BOT_TOKEN")
		os.Exit(2)
	}
	if cfg.AdminID == 0 {
		fmt.Println("❌ Не указан ADMIN_ID")
		os.Exit(2)
	}

	log, err := logger.New("report", cfg.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		log.Error("bot init failed", "error", err)
		os.Exit(1)
	}

	client := backendapi.NewClient(cfg.BackendURL)
	reporter := usecase.NewReporter(client, telegramAdapter.NewSender(bot), cfg.AdminID, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := reporter.SendDailyReport(ctx)
	if err != nil {
		fmt.Printf("❌ Ошибка отправки: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Отчёт отправлен: %d пользователей\n", n)
}
