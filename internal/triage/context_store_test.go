package triage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurtura-health/triage-engine/internal/lexicon"
)

func newTestStore(t *testing.T) (*ContextStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewContextStore(client, time.Hour), mr
}

func TestLoadUnknownSessionReturnsFreshContext(t *testing.T) {
	store, _ := newTestStore(t)

	conv, err := store.Load(context.Background(), "new-session")
	require.NoError(t, err)

	assert.Equal(t, "new-session", conv.SessionID)
	assert.Equal(t, StateCalm, conv.EmotionalState)
	assert.Equal(t, StyleWarm, conv.ResponseStyle)
	assert.Empty(t, conv.DiscussedTopics)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	conv := NewContext("s1")
	conv.EmotionalState = StateOverwhelmed
	conv.ResponseStyle = StylePractical
	conv.MarkDiscussed(lexicon.TopicSleep)
	conv.MarkDiscussed(lexicon.TopicGuilt)

	require.NoError(t, store.Save(ctx, conv))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, StateOverwhelmed, loaded.EmotionalState)
	assert.Equal(t, StylePractical, loaded.ResponseStyle)
	assert.True(t, loaded.WasDiscussed(lexicon.TopicSleep))
	assert.True(t, loaded.WasDiscussed(lexicon.TopicGuilt))
	assert.False(t, loaded.WasDiscussed(lexicon.TopicFeeding))
}

func TestSaveNilContext(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestContextExpiresWithTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	conv := NewContext("s1")
	conv.MarkDiscussed(lexicon.TopicSleep)
	require.NoError(t, store.Save(ctx, conv))

	mr.FastForward(2 * time.Hour)

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.DiscussedTopics, "expired session should start fresh")
}
