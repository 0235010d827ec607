package legacy

import (
	"WishKeeper/internal/model"
	"encoding/json"
	"errors"
	"os"
)

// Slot — плоский JSON-слот со списком вишлиста, оставшийся от версии
// до транзакционного хранилища. Читается один раз при миграции и очищается.
type Slot struct {
	Path string
}

// record повторяет форму записи легаси-формата: bought мог отсутствовать,
// отсутствие трактуется как false.
type record struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Link   string `json:"link"`
	Price  string `json:"price"`
	Bought bool   `json:"bought"`
}

// Load читает и разбирает слот. Отсутствующий файл — не ошибка: возвращается
// пустой список. Битый JSON возвращается как ошибка, решение о том, считать ли
// это поводом падать, остаётся за вызывающим (миграция трактует как no-op).
func (s Slot) Load() ([]model.WishlistItem, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var recs []record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, err
	}
	items := make([]model.WishlistItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, model.WishlistItem{
			ID:     r.ID,
			Name:   r.Name,
			Link:   r.Link,
			Price:  r.Price,
			Bought: r.Bought,
		})
	}
	return items, nil
}

// Clear стирает слот после успешного импорта. Отсутствующий файл — no-op.
func (s Slot) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
