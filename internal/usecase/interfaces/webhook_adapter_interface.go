package interfaces

import (
	"context"
	"errors"
	"net/http"

	"event_registration/internal/domain/entities"
)

var (
	ErrWebhookSignatureInvalid = errors.New("webhook signature invalid")
	ErrWebhookPayloadInvalid   = errors.New("webhook payload invalid")
)

// IWebhookAdapter is the processor-specific half of webhook handling.
// Verify must be called before ExtractEventCore.
type IWebhookAdapter interface {
	Provider() string
	Verify(ctx context.Context, headers http.Header, rawBody []byte) error
	ExtractEventCore(ctx context.Context, rawBody []byte) (entities.WebhookEventCore, error)
}
