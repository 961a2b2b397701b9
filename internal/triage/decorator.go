package triage

import (
	"context"
	"strings"

	"github.com/nurtura-health/triage-engine/pkg/logging"
)

// Completer is the seam for an external free-form generation service used
// to rephrase canned reply text. Implementations live outside this package.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Decorator rephrases Response.Message through a Completer. Only the message
// text is ever touched: tone, response type, tips, follow-ups, and scripture
// references stay authoritative. A failing or empty completion falls back to
// the canned message, so the triage path never depends on the external
// service being up.
type Decorator struct {
	completer Completer
	logger    *logging.Logger
}

// NewDecorator creates a decorator. A nil completer yields a pass-through.
func NewDecorator(completer Completer, logger *logging.Logger) *Decorator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Decorator{completer: completer, logger: logger}
}

const decoratePrompt = "Rephrase the following supportive message to a new mother in a natural, warm voice. " +
	"Keep the meaning, any scripture citation, and the length roughly the same. Reply with the message only.\n\n"

// Decorate returns the response with a rephrased message, or the original
// response untouched when decoration is unavailable or fails.
func (d *Decorator) Decorate(ctx context.Context, resp Response) Response {
	if d == nil || d.completer == nil {
		return resp
	}

	text, err := d.completer.Complete(ctx, decoratePrompt+resp.Message)
	if err != nil {
		d.logger.Warn("decoration failed, keeping canned message", "error", err)
		return resp
	}
	text = strings.TrimSpace(text)
	if text == "" {
		d.logger.Warn("decoration returned empty text, keeping canned message")
		return resp
	}

	resp.Message = text
	return resp
}
