package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playwise/kidsync/internal/store"
)

// getLevelQuestions serves the cached question payload for one level so the
// shell can start a level without touching the network.
func (h *Handler) getLevelQuestions(w http.ResponseWriter, r *http.Request) {
	levelID := chi.URLParam(r, "levelID")

	payload, err := h.cache.Questions(r.Context(), levelID)
	if errors.Is(err, store.ErrQuestionsNotCached) {
		http.Error(w, "level not cached", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("level_id", levelID).Msg("read cached questions")
		http.Error(w, "cache unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(payload.Data); err != nil {
		h.logger.Error().Err(err).Str("level_id", levelID).Msg("write cached questions")
	}
}

func (h *Handler) getLevelAvailability(w http.ResponseWriter, r *http.Request) {
	levelID := chi.URLParam(r, "levelID")

	cached, err := h.cache.HasQuestions(r.Context(), levelID)
	if err != nil {
		h.logger.Error().Err(err).Str("level_id", levelID).Msg("check cached questions")
		http.Error(w, "cache unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := struct {
		LevelID   string `json:"levelId"`
		Available bool   `json:"available"`
	}{LevelID: levelID, Available: cached}
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("encode level availability")
	}
}

func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.cache.Subscription(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("read cached subscription")
		http.Error(w, "cache unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(sub); err != nil {
		h.logger.Error().Err(err).Msg("encode subscription")
	}
}
