package server

import (
	"context"
	"encoding/json"
	"net/http"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.engine.Status(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("assemble sync status")
		http.Error(w, "status unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error().Err(err).Msg("encode sync status")
	}
}

// triggerSync requests an immediate forced sync and returns right away.
// The sync runs in the background; callers observe its outcome by polling
// the status endpoint. Without a session token only content is refreshed.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	token := ""
	if h.tokenFn != nil {
		token = h.tokenFn()
	}

	go func() {
		ctx := context.Background()
		if token == "" {
			h.engine.SyncContentOnly(ctx, true)
			return
		}
		h.engine.Sync(ctx, token, true)
	}()

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
