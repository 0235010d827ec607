package handlers

import (
	"WishKeeper/internal/config"
	"WishKeeper/internal/middleware"
	"WishKeeper/internal/model"
	"WishKeeper/internal/service"
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed web/index.html
var indexHTML []byte

// ItemHandler обрабатывает список вишлиста и его мутации.
type ItemHandler struct {
	Wishlist *service.WishlistService
	Logger   *zap.SugaredLogger
	Config   *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(wishlist *service.WishlistService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Wishlist: wishlist, Logger: logger, Config: cfg}
}

// ItemPayload — тело add/edit: все три поля обязательны, содержимое свободное.
type ItemPayload struct {
	Name  string `json:"name"`
	Link  string `json:"link"`
	Price string `json:"price"`
}

// ListResponse — список плюс сводка одним ответом, чтобы странице хватало
// одного запроса на перерисовку.
type ListResponse struct {
	Items []model.WishlistItem `json:"items"`
	Stats service.Stats        `json:"stats"`
}

// Index отдаёт встроенную страницу с формой.
func (h *ItemHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

// List отдаёт все позиции и сводку. Здесь же единственному пользователю
// выдаётся сессионная cookie, которой защищены мутирующие ручки.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		if err := middleware.SetSessionCookie(w, uuid.NewString(), h.Config.AuthSecret); err != nil {
			h.Logger.Errorw("List: failed to issue session cookie", "error", err)
		}
	}
	h.writeList(w)
}

// Add создаёт позицию и отвечает ей. Сохранение отложенное: ошибка записи,
// если случится, останется в логах, ответ всегда отражает состояние в памяти.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}
	var p ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.Logger.Warnw("Add: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	it, err := h.Wishlist.Add(p.Name, p.Link, p.Price)
	if err != nil {
		h.badInput(w, "Add", err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// Edit меняет name/link/price позиции.
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var p ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.Logger.Warnw("Edit: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	it, err := h.Wishlist.Edit(id, p.Name, p.Link, p.Price)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.badInput(w, "Edit", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Toggle переключает отметку «куплено».
func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	it, err := h.Wishlist.ToggleBought(id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Errorw("Toggle: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Delete убирает позицию. Ошибка точечного удаления логируется, но ответ
// остаётся успешным: позиция уже убрана из состояния в памяти (optimistic
// delete), следующая полная перезапись выровняет хранилище.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.Wishlist.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete: persistence failed, in-memory state kept", "id", id, "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) writeList(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, ListResponse{
		Items: h.Wishlist.Items(),
		Stats: h.Wishlist.Stats(),
	})
}

func (h *ItemHandler) requireSession(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func (h *ItemHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// badInput разводит ошибку валидации (400) и внутреннюю ошибку (500).
func (h *ItemHandler) badInput(w http.ResponseWriter, op string, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		h.Logger.Warnw(op+": validation failed", "error", err)
		http.Error(w, "name, link and price are required", http.StatusBadRequest)
		return
	}
	h.Logger.Errorw(op+": service error", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
