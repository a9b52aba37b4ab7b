package webhooks

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"event_registration/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79/webhook"
)

const testStripeSecret = "whsec_test"

func signStripePayload(secret string, payload []byte, ts time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: ts,
	}).Header
}

const succeededEvent = `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","amount":20000,"currency":"usd","status":"succeeded","description":"Spring Gala"}}}`

func TestNewStripeAdapter_MissingSecret(t *testing.T) {
	if _, err := NewStripeAdapter(""); !errors.Is(err, ErrMissingStripeWebhookSecret) {
		t.Fatalf("expected ErrMissingStripeWebhookSecret, got %v", err)
	}
}

func TestStripeAdapter_Verify(t *testing.T) {
	a, _ := NewStripeAdapter(testStripeSecret)
	body := []byte(succeededEvent)

	t.Run("valid signature", func(t *testing.T) {
		h := http.Header{}
		h.Set("Stripe-Signature", signStripePayload(testStripeSecret, body, time.Now()))
		if err := a.Verify(context.Background(), h, body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		h := http.Header{}
		h.Set("Stripe-Signature", signStripePayload("whsec_other", body, time.Now()))
		if err := a.Verify(context.Background(), h, body); !errors.Is(err, interfaces.ErrWebhookSignatureInvalid) {
			t.Fatalf("expected ErrWebhookSignatureInvalid, got %v", err)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		h := http.Header{}
		h.Set("Stripe-Signature", signStripePayload(testStripeSecret, body, time.Now()))
		if err := a.Verify(context.Background(), h, []byte(`{"id":"evt_2"}`)); !errors.Is(err, interfaces.ErrWebhookSignatureInvalid) {
			t.Fatalf("expected ErrWebhookSignatureInvalid, got %v", err)
		}
	})

	t.Run("stale timestamp", func(t *testing.T) {
		h := http.Header{}
		h.Set("Stripe-Signature", signStripePayload(testStripeSecret, body, time.Now().Add(-time.Hour)))
		if err := a.Verify(context.Background(), h, body); !errors.Is(err, interfaces.ErrWebhookSignatureInvalid) {
			t.Fatalf("expected ErrWebhookSignatureInvalid, got %v", err)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if err := a.Verify(context.Background(), http.Header{}, body); !errors.Is(err, interfaces.ErrWebhookSignatureInvalid) {
			t.Fatalf("expected ErrWebhookSignatureInvalid, got %v", err)
		}
	})
}

func TestStripeAdapter_ExtractEventCore(t *testing.T) {
	a, _ := NewStripeAdapter(testStripeSecret)
	ctx := context.Background()

	core, err := a.ExtractEventCore(ctx, []byte(succeededEvent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !core.Relevant || core.TransactionID != "pi_1" || core.Description != "Spring Gala" || core.EventID != "evt_1" {
		t.Fatalf("unexpected core: %+v", core)
	}

	core, err = a.ExtractEventCore(ctx, []byte(`{"id":"evt_2","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_2","object":"payment_intent","status":"requires_payment_method"}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if core.Relevant || core.TransactionID != "pi_2" {
		t.Fatalf("expected irrelevant core for pi_2, got %+v", core)
	}

	core, err = a.ExtractEventCore(ctx, []byte(`{"id":"evt_3","type":"customer.created","data":{"object":{"id":"cus_1"}}}`))
	if err != nil || core.Relevant {
		t.Fatalf("expected irrelevant non-intent event, got %+v err=%v", core, err)
	}

	if _, err := a.ExtractEventCore(ctx, []byte(`not json`)); !errors.Is(err, interfaces.ErrWebhookPayloadInvalid) {
		t.Fatalf("expected ErrWebhookPayloadInvalid, got %v", err)
	}
}
