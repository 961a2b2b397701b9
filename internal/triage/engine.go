package triage

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nurtura-health/triage-engine/internal/lexicon"
	"github.com/nurtura-health/triage-engine/internal/observability/metrics"
	"github.com/nurtura-health/triage-engine/pkg/logging"
)

var dispatchTracer = otel.Tracer("triage/dispatcher")

// Engine routes inbound messages to topic response generators. It holds no
// per-session state of its own; everything session-scoped lives in the
// Context the caller passes in.
type Engine struct {
	lex     *lexicon.Lexicon
	logger  *logging.Logger
	metrics *metrics.TriageMetrics

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates a triage engine. A nil rng gets a time-seeded source;
// tests inject a fixed seed so canned-variant selection is deterministic.
func NewEngine(logger *logging.Logger, m *metrics.TriageMetrics, rng *rand.Rand) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		lex:     lexicon.Default(),
		logger:  logger,
		metrics: m,
		rng:     rng,
	}
}

// GenerateResponse classifies the message, dispatches to the matching topic
// generator, and then updates the conversation context — exactly once per
// call, after generation, so generators still see the pre-update discussed
// set when choosing between first-visit and repeat-visit phrasing.
func (e *Engine) GenerateResponse(ctx context.Context, message string, conv *Context) (Response, error) {
	_, span := dispatchTracer.Start(ctx, "triage.dispatch")
	defer span.End()

	if conv == nil {
		return Response{}, ErrNilContext
	}
	if strings.TrimSpace(message) == "" {
		return Response{}, ErrEmptyMessage
	}

	start := time.Now()

	// Domain guard first: it takes precedence over any topic keyword match,
	// and an off-domain turn leaves the session state untouched.
	if !e.lex.IsInDomain(message) {
		span.SetAttributes(attribute.String("triage.outcome", "off_domain"))
		e.metrics.ObserveChat("none", "off_domain")
		e.metrics.ObserveDispatchLatency(time.Since(start).Seconds())
		return e.offDomainResponse(), nil
	}

	topic, matched := e.lex.Match(message)
	if !matched {
		topic = lexicon.TopicGeneric
	}

	resp := e.dispatch(topic, conv)

	// Context update happens after generation, never before.
	conv.EmotionalState = ClassifyEmotion(message)
	conv.MarkDiscussed(topic)

	span.SetAttributes(
		attribute.String("triage.topic", string(topic)),
		attribute.String("triage.emotional_state", string(conv.EmotionalState)),
		attribute.String("triage.response_type", resp.ResponseType),
	)
	e.metrics.ObserveChat(string(topic), "ok")
	e.metrics.ObserveDispatchLatency(time.Since(start).Seconds())

	e.logger.Debug("dispatched message",
		"session_id", conv.SessionID,
		"topic", topic,
		"emotional_state", conv.EmotionalState,
		"response_type", resp.ResponseType,
	)

	return resp, nil
}

func (e *Engine) dispatch(topic lexicon.TopicID, conv *Context) Response {
	switch topic {
	case lexicon.TopicBehavior:
		return e.behaviorResponse(conv)
	case lexicon.TopicSleep:
		return e.sleepResponse(conv)
	case lexicon.TopicGuilt:
		return e.guiltResponse(conv)
	case lexicon.TopicRoutine:
		return e.routineResponse(conv)
	case lexicon.TopicFeeding:
		return e.feedingResponse(conv)
	case lexicon.TopicSpiritualStudy:
		return e.spiritualStudyResponse(conv)
	case lexicon.TopicScripture:
		return e.scriptureResponse(conv)
	case lexicon.TopicPrayer:
		return e.prayerResponse(conv)
	case lexicon.TopicSpiritualReflection:
		return e.spiritualReflectionResponse(conv)
	default:
		return e.genericResponse(conv)
	}
}

// pickVariant selects one canned sentence. The rand source is not safe for
// concurrent use, hence the lock.
func (e *Engine) pickVariant(variants []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return variants[e.rng.Intn(len(variants))]
}
