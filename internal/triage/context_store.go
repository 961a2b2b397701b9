package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nurtura-health/triage-engine/internal/lexicon"
)

const defaultContextTTL = 24 * time.Hour

// ContextStore persists conversation contexts between turns. The HTTP layer
// loads before each call and saves after; the engine itself never touches
// storage.
type ContextStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewContextStore creates a redis-backed context store.
func NewContextStore(client *redis.Client, ttl time.Duration) *ContextStore {
	if client == nil {
		panic("triage: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultContextTTL
	}
	return &ContextStore{
		redis:  client,
		ttl:    ttl,
		tracer: otel.Tracer("triage/context-store"),
	}
}

// storedContext is the wire form of a Context. The discussed set round-trips
// as a sorted list so stored payloads are stable.
type storedContext struct {
	SessionID       string   `json:"session_id"`
	EmotionalState  string   `json:"emotional_state"`
	DiscussedTopics []string `json:"discussed_topics"`
	ResponseStyle   string   `json:"response_style"`
}

// Load returns the stored context for the session, or a fresh one (calm,
// nothing discussed) when the session is unknown.
func (s *ContextStore) Load(ctx context.Context, sessionID string) (*Context, error) {
	ctx, span := s.tracer.Start(ctx, "triage.load_context")
	defer span.End()

	data, err := s.redis.Get(ctx, contextKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return NewContext(sessionID), nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("triage: failed to load context: %w", err)
	}

	var stored storedContext
	if err := json.Unmarshal(data, &stored); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("triage: failed to decode context: %w", err)
	}

	conv := NewContext(sessionID)
	if stored.EmotionalState != "" {
		conv.EmotionalState = EmotionalState(stored.EmotionalState)
	}
	if stored.ResponseStyle != "" {
		conv.ResponseStyle = ResponseStyle(stored.ResponseStyle)
	}
	for _, topic := range stored.DiscussedTopics {
		conv.MarkDiscussed(lexicon.TopicID(topic))
	}
	return conv, nil
}

// Save persists the context with a sliding TTL.
func (s *ContextStore) Save(ctx context.Context, conv *Context) error {
	ctx, span := s.tracer.Start(ctx, "triage.save_context")
	defer span.End()

	if conv == nil {
		return ErrNilContext
	}

	topics := make([]string, 0, len(conv.DiscussedTopics))
	for topic := range conv.DiscussedTopics {
		topics = append(topics, string(topic))
	}
	sort.Strings(topics)

	data, err := json.Marshal(storedContext{
		SessionID:       conv.SessionID,
		EmotionalState:  string(conv.EmotionalState),
		DiscussedTopics: topics,
		ResponseStyle:   string(conv.ResponseStyle),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("triage: failed to marshal context: %w", err)
	}

	if err := s.redis.Set(ctx, contextKey(conv.SessionID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("triage: failed to persist context: %w", err)
	}
	return nil
}

func contextKey(sessionID string) string {
	return fmt.Sprintf("triage:context:%s", sessionID)
}
