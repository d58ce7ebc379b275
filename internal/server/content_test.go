package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/internal/mock"
	"github.com/playwise/kidsync/internal/store"
	"github.com/playwise/kidsync/models"
)

func newContentTestServer(t *testing.T) (*httptest.Server, *mock.MockContentCache) {
	t.Helper()
	cache := mock.NewMockContentCache(gomock.NewController(t))
	h := NewHandler(&stubEngine{}, cache, func() string { return "" }, "1.4.2", logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv, cache
}

func TestGetLevelQuestions(t *testing.T) {
	srv, cache := newContentTestServer(t)

	data := json.RawMessage(`{"questions":[{"id":"q1"}]}`)
	cache.EXPECT().
		Questions(gomock.Any(), "counting-1").
		Return(models.QuestionPayload{LevelID: "counting-1", Version: 3, Data: data}, nil)

	resp, err := http.Get(srv.URL + "/api/levels/counting-1/questions")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(body))
}

func TestGetLevelQuestions_NotCached(t *testing.T) {
	srv, cache := newContentTestServer(t)

	cache.EXPECT().
		Questions(gomock.Any(), "shapes-9").
		Return(models.QuestionPayload{}, store.ErrQuestionsNotCached)

	resp, err := http.Get(srv.URL + "/api/levels/shapes-9/questions")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetLevelAvailability(t *testing.T) {
	srv, cache := newContentTestServer(t)

	cache.EXPECT().HasQuestions(gomock.Any(), "counting-1").Return(true, nil)

	resp, err := http.Get(srv.URL + "/api/levels/counting-1/available")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		LevelID   string `json:"levelId"`
		Available bool   `json:"available"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "counting-1", got.LevelID)
	assert.True(t, got.Available)
}

func TestGetSubscription(t *testing.T) {
	srv, cache := newContentTestServer(t)

	cache.EXPECT().
		Subscription(gomock.Any()).
		Return(models.Subscription{Active: true, Plan: "family"}, nil)

	resp, err := http.Get(srv.URL + "/api/player/subscription")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Subscription
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Active)
	assert.Equal(t, "family", got.Plan)
}
