package main

import (
	"os"

	"github.com/Artem-be/HRTest/internal/backend"
	"github.com/Artem-be/HRTest/internal/config"
	"github.com/Artem-be/HRTest/internal/infra/sqlite"
	"github.com/Artem-be/HRTest/internal/logger"
)

// config → sqlite → gin
func main() {
	cfg, err := config.LoadBackend()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New("backend", cfg.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}

	leads, err := sqlite.NewLeadRepo(cfg.DBPath)
	if err != nil {
		log.Error("lead sqlite init failed", "error", err)
		os.Exit(1)
	}
	activity, err := sqlite.NewActivityRepo(cfg.DBPath)
	if err != nil {
		log.Error("activity sqlite init failed", "error", err)
		os.Exit(1)
	}

	router := backend.NewRouter(leads, activity, log)

	log.Info("backend started", "addr", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Error("backend stopped", "error", err)
		os.Exit(1)
	}
}
