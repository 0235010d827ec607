package repo

import (
	"WishKeeper/internal/model"
	"fmt"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает хранилище и гарантирует схему (таблица + индекс по bought).
// DSN вида postgres://... подключает Postgres, всё остальное трактуется как путь
// к файлу SQLite (драйвер modernc — чистый Go, без cgo).
// Повторное открытие уже подготовленного хранилища — no-op, возвращается готовый хендл.
// Любая ошибка оборачивается в ErrOpen: вызывающий обязан её поднять наверх,
// а не подменять пустыми данными.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty dsn", ErrOpen)
	}

	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = gormpostgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	// Миграция идемпотентна: схема создаётся один раз, дальше — no-op.
	if err := db.AutoMigrate(&model.WishlistItem{}); err != nil {
		return nil, fmt.Errorf("%w: automigrate: %v", ErrOpen, err)
	}
	return db, nil
}
