package handlers

import (
	"WishKeeper/internal/config"
	"WishKeeper/internal/middleware"
	"WishKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	wishlist *service.WishlistService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	itemHandler := NewItemHandler(wishlist, logger, config)

	// Страница с формой
	r.Get("/", itemHandler.Index)

	// Items routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Add)
	r.Put("/api/items/{id}", itemHandler.Edit)
	r.Post("/api/items/{id}/toggle", itemHandler.Toggle)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	return &Handler{Router: r}
}
