package service

import (
	"github.com/playwise/kidsync/internal/adapter"
	"github.com/playwise/kidsync/internal/config"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/store"
)

type ClientServices struct {
	Fetcher ContentFetcher
	Queue   MutationQueue
	Engine  SyncEngine
}

func NewClientServices(
	storages *store.ClientStorages,
	host adapter.ContentHost,
	backend adapter.Backend,
	cfg config.ClientWorkers,
	log *logger.Logger,
) *ClientServices {
	fetcher := NewContentFetcher(storages.ContentCache, host, cfg.FetchBatchSize, log)
	queue := NewMutationQueue(storages.MutationStore, backend, cfg.QueueCapacity, log)

	return &ClientServices{
		Fetcher: fetcher,
		Queue:   queue,
		Engine: NewSyncEngine(
			storages.ContentCache,
			queue,
			fetcher,
			backend,
			cfg.SyncInterval,
			cfg.ContentThrottle,
			log,
		),
	}
}
