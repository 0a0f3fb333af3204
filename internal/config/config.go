package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Log настройки логирования, общие для всех бинарей.
type Log struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`       // debug|info|warn|error
	Encoding string `envconfig:"LOG_ENCODING" default:"console"` // console|json
	File     string `envconfig:"LOG_FILE"`                       // пусто = только консоль
}

// Bot конфигурация процесса бота.
type Bot struct {
	BotToken       string        `envconfig:"BOT_TOKEN" required:"true"`
	AdminID        int64         `envconfig:"ADMIN_ID" required:"true"`
	AdminChatIDs   []int64       `envconfig:"ADMIN_CHAT_IDS"` // доступ к /admin, через запятую
	BackendURL     string        `envconfig:"BACKEND_URL" default:"http://localhost:8080/usercontrol/"`
	BotDBPath      string        `envconfig:"BOT_DB_PATH" default:"./data/bot.db"` // пусто = воронка в памяти
	SessionDBPath  string        `envconfig:"SESSION_DB_PATH"` // пусто = сессии в памяти
	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"24h"`
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":8081"` // healthz
	Log            Log
}

// Backend конфигурация REST-сервиса.
type Backend struct {
	Addr   string `envconfig:"BACKEND_ADDR" default:":8080"`
	DBPath string `envconfig:"DB_PATH" default:"./data/backend.db"`
	Log    Log
}

// Report конфигурация разового отчета (cmd/report). Токен и admin id могут
// прийти флагами, поэтому здесь они не required.
type Report struct {
	BotToken   string `envconfig:"BOT_TOKEN"`
	AdminID    int64  `envconfig:"ADMIN_ID"`
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:8080/usercontrol/"`
	Log        Log
}

func LoadBot() (Bot, error) {
	_ = godotenv.Load()
	var cfg Bot
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadBackend() (Backend, error) {
	_ = godotenv.Load()
	var cfg Backend
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadReport() (Report, error) {
	_ = godotenv.Load()
	var cfg Report
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
