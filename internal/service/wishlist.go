package service

import (
	"WishKeeper/internal/legacy"
	"WishKeeper/internal/model"
	"WishKeeper/internal/repo"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrNotFound — правка/переключение по несуществующему id.
var ErrNotFound = errors.New("item not found")

// itemInput — валидируемый пользовательский ввод. Поля обязательны,
// но содержимое не проверяется глубже присутствия: price — свободный текст,
// link достаточно непустой строки.
type itemInput struct {
	Name  string `validate:"required"`
	Link  string `validate:"required"`
	Price string `validate:"required"`
}

// Stats — сводка по списку: счётчики и суммарная стоимость некупленного.
type Stats struct {
	Pending      int     `json:"pending"`
	Bought       int     `json:"bought"`
	PendingTotal float64 `json:"pending_total"`
}

// WishlistService владеет списком в памяти и политикой его сохранения.
// Каждая мутация (кроме удаления) планирует одну отложенную полную перезапись:
// новый запрос на запись замещает ещё не сработавший, на диск уходит только
// последний снимок. Удаление пишется сразу и точечно, а из памяти элемент
// убирается независимо от исхода записи (optimistic delete).
type WishlistService struct {
	repo     repo.ItemRepository
	slot     legacy.Slot
	logger   *zap.SugaredLogger
	debounce time.Duration
	validate *validator.Validate

	mu    sync.Mutex
	items []model.WishlistItem
	timer *time.Timer

	// wmu сериализует обращения к хранилищу: отложенная перезапись и
	// немедленное удаление не перегоняют друг друга на уровне транзакций.
	wmu sync.Mutex
}

// NewWishlistService создаёт сервис поверх репозитория и легаси-слота.
// debounce — окно схлопывания серии правок в одну запись.
func NewWishlistService(r repo.ItemRepository, slot legacy.Slot, logger *zap.SugaredLogger, debounce time.Duration) *WishlistService {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &WishlistService{
		repo:     r,
		slot:     slot,
		logger:   logger,
		debounce: debounce,
		validate: validator.New(),
	}
}

// Load загружает список при старте и, если хранилище пусто, выполняет
// одноразовый импорт легаси-слота. Ошибки чтения на этой границе гасятся:
// вызывающий получает пустой список, причина остаётся только в логах —
// по возвращаемому значению «пусто» и «сломано» неразличимы.
func (s *WishlistService) Load(ctx context.Context) []model.WishlistItem {
	items, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Errorw("load-all failed, starting with empty list", "error", err)
		items = nil
	}

	// Импорт обязан случиться до любой другой записи: иначе первая же
	// отложенная перезапись зафиксирует пустоту, и слот будет проигнорирован.
	if len(items) == 0 {
		if imported := s.migrateLegacy(ctx); imported != nil {
			items = imported
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.snapshot()
}

// migrateLegacy читает слот, импортирует непустой список через полную
// перезапись и стирает слот. Отсутствующий, пустой или битый слот — тихий no-op.
// Возвращает импортированные элементы либо nil.
func (s *WishlistService) migrateLegacy(ctx context.Context) []model.WishlistItem {
	old, err := s.slot.Load()
	if err != nil {
		s.logger.Debugw("legacy slot unreadable, skipping import", "path", s.slot.Path, "error", err)
		return nil
	}
	if len(old) == 0 {
		return nil
	}
	if err := s.repo.SaveAll(ctx, old); err != nil {
		// Слот не трогаем: данные останутся на месте до следующего старта.
		s.logger.Errorw("legacy import failed", "path", s.slot.Path, "error", err)
		return nil
	}
	if err := s.slot.Clear(); err != nil {
		s.logger.Warnw("failed to clear legacy slot after import", "path", s.slot.Path, "error", err)
	}
	s.logger.Infow("imported legacy wishlist", "count", len(old))
	return old
}

// Items возвращает снимок текущего списка.
func (s *WishlistService) Items() []model.WishlistItem {
	return s.snapshot()
}

// Add создаёт позицию: id — текущее время в миллисекундах, bought=false.
func (s *WishlistService) Add(name, link, price string) (model.WishlistItem, error) {
	if err := s.validate.Struct(itemInput{Name: name, Link: link, Price: price}); err != nil {
		return model.WishlistItem{}, err
	}

	s.mu.Lock()
	id := time.Now().UnixMilli()
	for s.indexOfLocked(id) >= 0 {
		id++
	}
	it := model.WishlistItem{ID: id, Name: name, Link: link, Price: price, Bought: false}
	s.items = append(s.items, it)
	s.mu.Unlock()

	s.scheduleFlush()
	return it, nil
}

// Edit меняет name/link/price существующей позиции. ID и bought не трогаются.
func (s *WishlistService) Edit(id int64, name, link, price string) (model.WishlistItem, error) {
	if err := s.validate.Struct(itemInput{Name: name, Link: link, Price: price}); err != nil {
		return model.WishlistItem{}, err
	}

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return model.WishlistItem{}, ErrNotFound
	}
	s.items[i].Name = name
	s.items[i].Link = link
	s.items[i].Price = price
	it := s.items[i]
	s.mu.Unlock()

	s.scheduleFlush()
	return it, nil
}

// ToggleBought переключает отметку «куплено».
func (s *WishlistService) ToggleBought(id int64) (model.WishlistItem, error) {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return model.WishlistItem{}, ErrNotFound
	}
	s.items[i].Bought = !s.items[i].Bought
	it := s.items[i]
	s.mu.Unlock()

	s.scheduleFlush()
	return it, nil
}

// Delete убирает позицию из памяти и сразу пишет точечное удаление в
// хранилище. Из памяти элемент уходит независимо от исхода записи; ошибка
// отдаётся вызывающему, который по принятой политике лишь логирует её.
func (s *WishlistService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	if i := s.indexOfLocked(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.mu.Unlock()

	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.repo.DeleteByID(ctx, id)
}

// Stats считает сводку. Цена приводится к числу отбрасыванием всего, кроме
// цифр и точки; нераспознанная цена даёт нулевой вклад.
func (s *WishlistService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st Stats
	for _, it := range s.items {
		if it.Bought {
			st.Bought++
			continue
		}
		st.Pending++
		st.PendingTotal += PriceValue(it.Price)
	}
	return st
}

// FlushNow принудительно пишет текущий снимок, отменяя отложенную запись.
// Используется CLI и остановкой сервера.
func (s *WishlistService) FlushNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.flush(ctx)
}

// Close останавливает отложенную запись и доливает последний снимок.
func (s *WishlistService) Close() error {
	return s.FlushNow(context.Background())
}

// scheduleFlush взводит (или перевзводит) единственный таймер отложенной
// записи: серия быстрых правок схлопывается в одну полную перезапись.
func (s *WishlistService) scheduleFlush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Reset(s.debounce)
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()
		if err := s.flush(context.Background()); err != nil {
			s.logger.Errorw("deferred save-all failed", "error", err)
		}
	})
}

// flush снимает снимок на момент записи (не на момент планирования —
// удаления, случившиеся в окне задержки, уже отражены) и пишет его целиком.
// Снимок берётся уже под wmu: из двух гонящихся записей последней коммитится
// та, что видела более свежее состояние.
func (s *WishlistService) flush(ctx context.Context) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	snap := s.snapshot()
	return s.repo.SaveAll(ctx, snap)
}

func (s *WishlistService) snapshot() []model.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// indexOfLocked ищет позицию по id; вызывается только под s.mu.
func (s *WishlistService) indexOfLocked(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
