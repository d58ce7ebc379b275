package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/playwise/kidsync/internal/config"
	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/models"
)

type httpContentHost struct {
	client *resty.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewHTTPContentHost returns a [ContentHost] backed by the static content
// CDN. The host serves immutable JSON files behind aggressive edge caching,
// so every request carries a cache-busting `t` query parameter to make sure
// the manifest read reflects the latest publish.
func NewHTTPContentHost(cfg config.ClientContent, log *logger.Logger) (ContentHost, error) {
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

	return &httpContentHost{client: cli, logger: log, now: time.Now}, nil
}

func (h *httpContentHost) FetchManifest(ctx context.Context) (models.Manifest, error) {
	resp, err := h.bustedRequest(ctx).Get("/manifest.json")
	if err != nil {
		return models.Manifest{}, fmt.Errorf("manifest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Manifest{}, err
	}

	var m models.Manifest
	if err = json.Unmarshal(resp.Body(), &m); err != nil {
		return models.Manifest{}, fmt.Errorf("decode manifest response: %w", err)
	}
	if m.LevelVersions == nil {
		m.LevelVersions = map[string]int64{}
	}

	return m, nil
}

func (h *httpContentHost) FetchLevelsMeta(ctx context.Context) ([]models.LevelMeta, error) {
	resp, err := h.bustedRequest(ctx).Get("/levels-meta.json")
	if err != nil {
		return nil, fmt.Errorf("levels meta request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var meta []models.LevelMeta
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return nil, fmt.Errorf("decode levels meta response: %w", err)
	}

	return meta, nil
}

func (h *httpContentHost) FetchQuestions(ctx context.Context, levelID string) (json.RawMessage, error) {
	resp, err := h.bustedRequest(ctx).Get(fmt.Sprintf("/questions/level_%s.json", levelID))
	if err != nil {
		return nil, fmt.Errorf("questions request (level_id=%s): %w", levelID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// Opaque payload, stored as received.
	return json.RawMessage(resp.Body()), nil
}

func (h *httpContentHost) bustedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetQueryParam("t", strconv.FormatInt(h.now().UnixMilli(), 10))
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
