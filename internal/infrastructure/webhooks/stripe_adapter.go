package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	stripeSignatureHeader      = "Stripe-Signature"
	stripeEventIntentSucceeded = "payment_intent.succeeded"
)

var ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")

// StripeAdapter verifies Stripe-Signature headers and reduces
// payment_intent.* events to a WebhookEventCore.
type StripeAdapter struct {
	secret string
}

var _ interfaces.IWebhookAdapter = (*StripeAdapter)(nil)

func NewStripeAdapter(secret string) (*StripeAdapter, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingStripeWebhookSecret
	}
	return &StripeAdapter{secret: secret}, nil
}

func (a *StripeAdapter) Provider() string { return "stripe" }

// Verify checks the HMAC signature and timestamp tolerance. The API version
// of the event is not checked; only the intent fields are read.
func (a *StripeAdapter) Verify(_ context.Context, headers http.Header, rawBody []byte) error {
	if err := webhook.ValidatePayload(rawBody, headers.Get(stripeSignatureHeader), a.secret); err != nil {
		return fmt.Errorf("%w: %w", interfaces.ErrWebhookSignatureInvalid, err)
	}
	return nil
}

type stripeEventEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

func (a *StripeAdapter) ExtractEventCore(_ context.Context, rawBody []byte) (entities.WebhookEventCore, error) {
	var ev stripeEventEnvelope
	if err := json.Unmarshal(rawBody, &ev); err != nil {
		return entities.WebhookEventCore{}, fmt.Errorf("%w: %w", interfaces.ErrWebhookPayloadInvalid, err)
	}
	if ev.Type == "" {
		return entities.WebhookEventCore{}, fmt.Errorf("%w: missing event type", interfaces.ErrWebhookPayloadInvalid)
	}

	core := entities.WebhookEventCore{EventID: ev.ID, EventType: ev.Type}
	if !strings.HasPrefix(ev.Type, "payment_intent.") {
		return core, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(ev.Data.Object, &pi); err != nil {
		return entities.WebhookEventCore{}, fmt.Errorf("%w: payment intent: %w", interfaces.ErrWebhookPayloadInvalid, err)
	}
	core.TransactionID = pi.ID
	core.Status = string(pi.Status)
	core.Relevant = ev.Type == stripeEventIntentSucceeded && pi.Status == stripe.PaymentIntentStatusSucceeded
	if core.Relevant {
		core.Description = pi.Description
	}
	log.Printf("[webhook][gateway] stripe event event_id=%s type=%s transaction_id=%s status=%s", ev.ID, ev.Type, core.TransactionID, core.Status)
	return core, nil
}
