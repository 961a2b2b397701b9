package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCompleter struct {
	text string
	err  error
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func cannedResponse() Response {
	return Response{
		Message:           "canned message",
		Tone:              "reassuring",
		ResponseType:      "sleep_intro",
		PracticalTips:     []string{"tip"},
		FollowUpQuestions: []string{"question?"},
		ScriptureRef:      "Psalm 23:1",
	}
}

func TestDecorateRewritesMessageOnly(t *testing.T) {
	d := NewDecorator(&stubCompleter{text: "a warmer phrasing"}, nil)

	got := d.Decorate(context.Background(), cannedResponse())

	assert.Equal(t, "a warmer phrasing", got.Message)

	// Everything besides the message is authoritative and untouched.
	want := cannedResponse()
	assert.Equal(t, want.Tone, got.Tone)
	assert.Equal(t, want.ResponseType, got.ResponseType)
	assert.Equal(t, want.PracticalTips, got.PracticalTips)
	assert.Equal(t, want.FollowUpQuestions, got.FollowUpQuestions)
	assert.Equal(t, want.ScriptureRef, got.ScriptureRef)
}

func TestDecorateFallsBackOnError(t *testing.T) {
	d := NewDecorator(&stubCompleter{err: errors.New("upstream down")}, nil)

	got := d.Decorate(context.Background(), cannedResponse())

	assert.Equal(t, "canned message", got.Message)
}

func TestDecorateFallsBackOnEmptyCompletion(t *testing.T) {
	d := NewDecorator(&stubCompleter{text: "   \n"}, nil)

	got := d.Decorate(context.Background(), cannedResponse())

	assert.Equal(t, "canned message", got.Message)
}

func TestDecorateNilSafe(t *testing.T) {
	var d *Decorator

	got := d.Decorate(context.Background(), cannedResponse())
	assert.Equal(t, "canned message", got.Message)

	passthrough := NewDecorator(nil, nil)
	got = passthrough.Decorate(context.Background(), cannedResponse())
	assert.Equal(t, "canned message", got.Message)
}
