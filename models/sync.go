package models

import "time"

// FaultKind classifies a recorded sync fault so the status consumer can
// decide how to render it.
type FaultKind string

const (
	FaultContent  FaultKind = "content"
	FaultProgress FaultKind = "progress"
	FaultQueue    FaultKind = "queue"
)

// SyncFault is one structured error record captured during a sync cycle.
// Faults accumulate as an ordered list for the duration of a cycle so that a
// content error and a progress error from the same cycle are both visible.
type SyncFault struct {
	Kind    FaultKind `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// SyncStatus is a derived view assembled on demand from the cache, the queue
// and the engine's in-memory flags. It is never persisted and is the only
// thing the UI layer needs to render spinners, "last synced" labels and
// error banners.
type SyncStatus struct {
	LastSyncedAt      time.Time   `json:"lastSyncedAt"`
	CachedLevels      int         `json:"cachedLevels"`
	QueueLength       int         `json:"queueLength"`
	QueueEvictedTotal int64       `json:"queueEvictedTotal"`
	Syncing           bool        `json:"syncing"`
	ContentEverSynced bool        `json:"contentEverSynced"`
	Faults            []SyncFault `json:"faults,omitempty"`
}
