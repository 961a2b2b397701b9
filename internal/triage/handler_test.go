package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	engine := NewEngine(nil, nil, rand.New(rand.NewSource(1)))
	store := NewContextStore(client, time.Hour)
	return NewHandler(engine, store, nil, nil)
}

func postChat(t *testing.T, h *Handler, body ChatRequest) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChatMintsSessionID(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, ChatRequest{Message: "the baby won't sleep"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "sleep_intro", resp.ResponseType)
}

func TestChatRoundTripsContextBetweenCalls(t *testing.T) {
	h := newTestHandler(t)

	first := postChat(t, h, ChatRequest{SessionID: "s1", Message: "no sleep at all"})
	require.Equal(t, http.StatusOK, first.Code)
	var firstResp ChatResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	assert.Equal(t, "sleep_intro", firstResp.ResponseType)

	second := postChat(t, h, ChatRequest{SessionID: "s1", Message: "sleep is still rough"})
	require.Equal(t, http.StatusOK, second.Code)
	var secondResp ChatResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.Equal(t, "sleep_continuity", secondResp.ResponseType)
}

func TestChatEmptyMessageRejected(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, ChatRequest{SessionID: "s1", Message: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatInvalidBodyRejected(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatAppliesResponseStyle(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, ChatRequest{
		SessionID:     "s1",
		Message:       "our routine is chaotic",
		ResponseStyle: "practical",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	conv, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, StylePractical, conv.ResponseStyle)
}

func TestChatIgnoresUnknownStyle(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, ChatRequest{
		SessionID:     "s1",
		Message:       "our routine is chaotic",
		ResponseStyle: "sarcastic",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	conv, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, StyleWarm, conv.ResponseStyle)
}

func TestChatWithDecorator(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	engine := NewEngine(nil, nil, rand.New(rand.NewSource(1)))
	store := NewContextStore(client, time.Hour)
	decorator := NewDecorator(&stubCompleter{text: "rephrased reply"}, nil)
	h := NewHandler(engine, store, decorator, nil)

	rec := postChat(t, h, ChatRequest{SessionID: "s1", Message: "the baby won't sleep"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rephrased reply", resp.Message)
	assert.Equal(t, "sleep_intro", resp.ResponseType, "decoration must not change the response type")
	assert.NotEmpty(t, resp.PracticalTips, "decoration must not drop tips")
}
