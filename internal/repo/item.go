package repo

import (
	"WishKeeper/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository определяет контракт доступа к вишлисту для слоя сервиса.
// Это единственная граница, через которую презентационный слой трогает хранилище.
type ItemRepository interface {
	// LoadAll возвращает все записи; порядок не специфицирован.
	LoadAll(ctx context.Context) ([]model.WishlistItem, error)

	// SaveAll атомарно заменяет всё содержимое хранилища на переданный набор.
	// Либо применяется целиком, либо прежнее содержимое остаётся нетронутым.
	SaveAll(ctx context.Context, items []model.WishlistItem) error

	// DeleteByID удаляет ровно одну запись по ключу.
	// Отсутствующий ключ — успешный no-op.
	DeleteByID(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория поверх открытого хендла.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) LoadAll(ctx context.Context) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return items, nil
}

// SaveAll выполняется в одной read-write транзакции: очистка таблицы и запись
// набора по ключам (upsert: коллизия id перезаписывает строку). Любая ошибка
// откатывает транзакцию целиком — частично записанное состояние ненаблюдаемо.
func (r *itemRepo) SaveAll(ctx context.Context, items []model.WishlistItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.WishlistItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (r *itemRepo) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&model.WishlistItem{}, id).Error; err != nil {
		return fmt.Errorf("%w: id=%d: %v", ErrDelete, id, err)
	}
	return nil
}
