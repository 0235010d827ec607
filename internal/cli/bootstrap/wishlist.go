package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"WishKeeper/internal/config"
	"WishKeeper/internal/legacy"
	"WishKeeper/internal/repo"
	"WishKeeper/internal/service"

	"go.uber.org/zap"
)

// OpenWishlist открывает хранилище, выполняет стартовую загрузку (включая
// одноразовый импорт легаси-слота) и возвращает (service, cleanup, error).
// cleanup необходимо вызвать по окончании работы: он доливает последний
// отложенный снимок в хранилище.
func OpenWishlist(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*service.WishlistService, func() error, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	// для файлового SQLite каталог должен существовать заранее
	if !strings.HasPrefix(cfg.DatabaseDSN, "postgres") {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabaseDSN), 0o700); err != nil {
			return nil, nil, fmt.Errorf("prepare store dir: %w", err)
		}
	}

	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	svc := service.NewWishlistService(
		repo.NewItemRepository(db),
		legacy.Slot{Path: cfg.LegacyPath},
		logger,
		time.Duration(cfg.FlushDebounceMS)*time.Millisecond,
	)
	svc.Load(ctx)

	cleanup := func() error { return svc.Close() }
	return svc, cleanup, nil
}
