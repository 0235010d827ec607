package main

import (
	"WishKeeper/internal/cli/bootstrap"
	"WishKeeper/internal/config"
	"WishKeeper/internal/handlers"
	"WishKeeper/internal/middleware"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// открываем хранилище, грузим список, при пустом хранилище импортируем легаси-слот
	wishlist, cleanup, err := bootstrap.OpenWishlist(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize store", "error", err)
	}
	// доливаем последний отложенный снимок перед выходом
	defer func() {
		if err := cleanup(); err != nil {
			sugar.Errorw("final flush failed", "error", err)
		}
	}()

	h := handlers.NewHandler(wishlist, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"LegacyPath", cfg.LegacyPath,
		"FlushDebounceMS", cfg.FlushDebounceMS,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
