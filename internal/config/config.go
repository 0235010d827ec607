package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Хранилище: путь к файлу SQLite либо postgres:// DSN
	DatabaseDSN string `env:"DATABASE_URI"`
	// Легаси-слот: JSON-файл со списком из дотранзакционной версии
	LegacyPath string `env:"LEGACY_PATH"`

	// HTTP-сервер
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	AuthSecret  string `env:"AUTH_SECRET"`

	// Задержка отложенной записи, мс (окно схлопывания серии правок в одну запись)
	FlushDebounceMS int `env:"FLUSH_DEBOUNCE_MS"`

	// Производные/служебные
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // показать версию клиента и выйти (только флаг)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "путь к SQLite либо postgres:// DSN")
	flag.StringVar(&cfg.LegacyPath, "legacy", cfg.LegacyPath, "путь к легаси JSON-слоту")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес HTTP-сервера (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "включить HTTPS-схему для ServerURL")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи сессионной cookie")
	flag.IntVar(&cfg.FlushDebounceMS, "debounce", cfg.FlushDebounceMS, "задержка отложенной записи, мс")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.FlushDebounceMS <= 0 {
		cfg.FlushDebounceMS = 300
	}
	// validate BaseURL: должен быть "address:port" (без схемы и пути), иначе дефолт
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Дефолты путей: каталог пользователя, рядом БД и легаси-слот
	home, _ := os.UserConfigDir()
	base := filepath.Join(home, "WishKeeper")
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = filepath.Join(base, "wishlist.db")
	}
	if cfg.LegacyPath == "" {
		cfg.LegacyPath = filepath.Join(base, "wishlist.json")
	}

	return cfg
}
