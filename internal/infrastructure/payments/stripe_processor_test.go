package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
)

func newTestStripeProcessor(t *testing.T, h http.Handler) *StripeProcessor {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	p, err := NewStripeProcessor("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestNewStripeProcessor_MissingKey(t *testing.T) {
	if _, err := NewStripeProcessor("  ", nil); !errors.Is(err, ErrMissingStripeSecretKey) {
		t.Fatalf("expected ErrMissingStripeSecretKey, got %v", err)
	}
}

func TestStripeProcessor_CreateTransaction(t *testing.T) {
	var gotKey, gotAmount, gotCurrency, gotCustomer string
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/customers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"object":"list","data":[],"has_more":false,"url":"/v1/customers"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"cus_1","object":"customer","email":"ada@example.com"}`))
	})
	mux.HandleFunc("/v1/payment_intents", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotKey = r.Header.Get("Idempotency-Key")
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")
		gotCustomer = r.PostForm.Get("customer")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":20000,"currency":"usd","status":"requires_payment_method","client_secret":"pi_1_secret","description":"Spring Gala"}`))
	})
	p := newTestStripeProcessor(t, mux)

	tx, err := p.CreateTransaction(context.Background(), entities.CreateTransactionRequest{
		AmountMinor:    20000,
		Currency:       "USD",
		Description:    "Spring Gala",
		IdempotencyKey: "K1",
		Customer:       entities.Customer{Email: "ada@example.com", Name: "Ada Lovelace"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID != "pi_1" || tx.AmountMinor != 20000 || tx.ClientSecret != "pi_1_secret" || tx.Description != "Spring Gala" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if gotKey != "K1" {
		t.Fatalf("expected idempotency key K1, got %q", gotKey)
	}
	if gotAmount != "20000" || gotCurrency != "usd" || gotCustomer != "cus_1" {
		t.Fatalf("unexpected form amount=%q currency=%q customer=%q", gotAmount, gotCurrency, gotCustomer)
	}
}

func TestStripeProcessor_UpdateTransactionAmount(t *testing.T) {
	var gotAmount, gotKey string
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotAmount = r.PostForm.Get("amount")
		gotKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":25000,"currency":"usd","status":"requires_payment_method"}`))
	})
	p := newTestStripeProcessor(t, mux)

	tx, err := p.UpdateTransactionAmount(context.Background(), "pi_1", 25000, "K2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.AmountMinor != 25000 || gotAmount != "25000" || gotKey != "K2" {
		t.Fatalf("unexpected update tx=%+v amount=%q key=%q", tx, gotAmount, gotKey)
	}
}

func TestStripeProcessor_CaptureTransaction(t *testing.T) {
	t.Run("captures authorized intent", func(t *testing.T) {
		captured := false
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":20000,"currency":"usd","status":"requires_capture"}`))
		})
		mux.HandleFunc("/v1/payment_intents/pi_1/capture", func(w http.ResponseWriter, r *http.Request) {
			captured = true
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":20000,"amount_received":20000,"currency":"usd","status":"succeeded","latest_charge":{"id":"ch_1","object":"charge","billing_details":{"email":"ada@example.com"}}}`))
		})
		p := newTestStripeProcessor(t, mux)

		res, err := p.CaptureTransaction(context.Background(), "pi_1", "K3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !captured {
			t.Fatalf("expected capture endpoint to be called")
		}
		if !res.Succeeded || res.AmountMinor != 20000 || res.CaptureID != "ch_1" || res.PayerEmail != "ada@example.com" {
			t.Fatalf("unexpected capture: %+v", res)
		}
	})

	t.Run("already succeeded is not captured again", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":20000,"amount_received":20000,"currency":"usd","status":"succeeded","receipt_email":"ada@example.com"}`))
		})
		mux.HandleFunc("/v1/payment_intents/pi_1/capture", func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("capture must not be called")
		})
		p := newTestStripeProcessor(t, mux)

		res, err := p.CaptureTransaction(context.Background(), "pi_1", "K3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Succeeded || res.PayerEmail != "ada@example.com" {
			t.Fatalf("unexpected capture: %+v", res)
		}
	})

	t.Run("card declined", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":20000,"currency":"usd","status":"requires_confirmation"}`))
		})
		mux.HandleFunc("/v1/payment_intents/pi_1/confirm", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
		})
		p := newTestStripeProcessor(t, mux)

		_, err := p.CaptureTransaction(context.Background(), "pi_1", "K3")
		if !errors.Is(err, interfaces.ErrProcessorDeclined) {
			t.Fatalf("expected ErrProcessorDeclined, got %v", err)
		}
	})
}

func TestStripeProcessor_GetTransaction_Unavailable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"try later"}}`))
	})
	p := newTestStripeProcessor(t, mux)

	_, err := p.GetTransaction(context.Background(), "pi_1")
	if !errors.Is(err, interfaces.ErrProcessorUnavailable) {
		t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
	}
}

func TestStripeProcessor_GetTransaction_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/payment_intents/pi_missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent: 'pi_missing'"}}`))
	})
	p := newTestStripeProcessor(t, mux)

	_, err := p.GetTransaction(context.Background(), "pi_missing")
	if !errors.Is(err, interfaces.ErrProcessorRejected) {
		t.Fatalf("expected ErrProcessorRejected, got %v", err)
	}
	if errors.Is(err, interfaces.ErrProcessorUnavailable) || errors.Is(err, interfaces.ErrProcessorDeclined) {
		t.Fatalf("rejection misclassified: %v", err)
	}
}

func TestMapStripeError_NonStripeError(t *testing.T) {
	err := mapStripeError(errors.New("dial tcp: refused"))
	if !errors.Is(err, interfaces.ErrProcessorUnavailable) {
		t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
	}
}
