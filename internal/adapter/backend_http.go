package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/playwise/kidsync/internal/config"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/models"
)

// Wire paths of the hosted function backend. Each mutation kind maps to its
// own typed RPC endpoint.
const (
	playerStatePath = "/api/player/state"

	levelStartedPath   = "/api/progress/level-started"
	levelCompletedPath = "/api/progress/level-completed"
)

type httpBackend struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPBackend returns a [Backend] backed by the hosted function service.
// The session token is attached per request rather than stored on the
// adapter: tokens rotate over the lifetime of a session and the caller owns
// the current one.
func NewHTTPBackend(cfg config.ClientBackend, log *logger.Logger) (Backend, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURLProvided
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpBackend{client: cli, logger: log}, nil
}

func (b *httpBackend) FetchPlayerState(ctx context.Context, token string) (models.PlayerState, error) {
	resp, err := b.authedRequest(ctx, token).Get(playerStatePath)
	if err != nil {
		return models.PlayerState{}, fmt.Errorf("player state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlayerState{}, err
	}

	var state models.PlayerState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.PlayerState{}, fmt.Errorf("decode player state response: %w", err)
	}
	if state.Progress == nil {
		state.Progress = models.Progress{}
	}

	return state, nil
}

func (b *httpBackend) SubmitMutation(ctx context.Context, token string, m models.PendingMutation) error {
	path, err := mutationPath(m.Kind)
	if err != nil {
		return err
	}

	resp, err := b.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(m).
		Post(path)
	if err != nil {
		return fmt.Errorf("submit mutation request (id=%s): %w", m.ID, err)
	}

	return mapHTTPError(resp)
}

func (b *httpBackend) authedRequest(ctx context.Context, token string) *resty.Request {
	req := b.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mutationPath(kind models.MutationKind) (string, error) {
	switch kind {
	case models.MutationLevelStarted:
		return levelStartedPath, nil
	case models.MutationLevelCompleted:
		return levelCompletedPath, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMutationKind, kind)
	}
}
