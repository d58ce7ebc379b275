package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/sync/status", h.getSyncStatus)
	router.Post("/api/sync/trigger", h.triggerSync)
	router.Get("/api/levels/{levelID}/questions", h.getLevelQuestions)
	router.Get("/api/levels/{levelID}/available", h.getLevelAvailability)
	router.Get("/api/player/subscription", h.getSubscription)
	router.Get("/api/version", h.getVersion)

	return router
}
