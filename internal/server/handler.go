package server

import (
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/service"
	"github.com/playwise/kidsync/internal/store"
)

// Handler holds the dependencies of the local API handlers.
type Handler struct {
	engine  service.SyncEngine
	cache   store.ContentCache
	tokenFn service.TokenFunc
	version string

	logger *logger.Logger
}

// NewHandler creates the local API handler set.
// tokenFn is consulted when a forced sync is triggered over HTTP; an empty
// token downgrades the trigger to a content-only sync.
func NewHandler(engine service.SyncEngine, cache store.ContentCache, tokenFn service.TokenFunc, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("local API handler created")
	return &Handler{
		engine:  engine,
		cache:   cache,
		tokenFn: tokenFn,
		version: version,
		logger:  logger,
	}
}
