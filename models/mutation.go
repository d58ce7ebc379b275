package models

import (
	"encoding/json"
	"time"
)

// MutationKind identifies which backend call a queued mutation replays to.
type MutationKind string

const (
	// MutationLevelStarted records that the player opened a level.
	MutationLevelStarted MutationKind = "level_started"
	// MutationLevelCompleted records a finished activity with its score.
	MutationLevelCompleted MutationKind = "level_completed"
)

// PendingMutation is one state-changing operation performed by the UI that
// the backend has not yet acknowledged. Mutations are causally dependent
// ("start level" precedes "complete level"), so enqueue order must be
// preserved all the way through the drain.
type PendingMutation struct {
	// Seq is the durable enqueue sequence number assigned by the store.
	// Zero until persisted.
	Seq int64 `json:"seq"`

	// ID is a client-generated UUID used by the backend for idempotent
	// replay: a mutation whose acknowledgment was lost will be resent with
	// the same ID.
	ID string `json:"id"`

	Kind      MutationKind    `json:"kind"`
	LevelID   string          `json:"levelId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
