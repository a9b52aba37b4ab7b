package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
)

func newPaypalTestServer(t *testing.T, mux *http.ServeMux) *PaypalProcessor {
	t.Helper()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"A21","token_type":"Bearer","expires_in":32400}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p, err := NewPaypalProcessor("client", "secret", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestNewPaypalProcessor_MissingCredentials(t *testing.T) {
	if _, err := NewPaypalProcessor("", "secret", "http://localhost"); !errors.Is(err, ErrMissingPaypalCredentials) {
		t.Fatalf("expected ErrMissingPaypalCredentials, got %v", err)
	}
}

func TestPaypalProcessor_CreateTransaction(t *testing.T) {
	var gotRequestID, gotAuth string
	var gotBody struct {
		Intent        string                       `json:"intent"`
		PurchaseUnits []paypal.PurchaseUnitRequest `json:"purchase_units"`
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("PayPal-Request-Id")
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"5O190127TN364715T","status":"CREATED","purchase_units":[{"amount":{"currency_code":"USD","value":"200.00"},"description":"Spring Gala"}],"links":[{"href":"https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T","rel":"approve","method":"GET"}]}`))
	})
	p := newPaypalTestServer(t, mux)

	tx, err := p.CreateTransaction(context.Background(), entities.CreateTransactionRequest{
		AmountMinor:    20000,
		Currency:       "usd",
		Description:    "Spring Gala",
		IdempotencyKey: "K1",
		Customer:       entities.Customer{Email: "ada@example.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID != "5O190127TN364715T" || tx.AmountMinor != 20000 || tx.Description != "Spring Gala" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.ApprovalURL == "" {
		t.Fatalf("expected approval url")
	}
	if gotRequestID != "K1" {
		t.Fatalf("expected request id K1, got %q", gotRequestID)
	}
	if gotAuth != "Bearer A21" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}
	if gotBody.Intent != paypal.OrderIntentCapture || len(gotBody.PurchaseUnits) != 1 || gotBody.PurchaseUnits[0].Description != "Spring Gala" || gotBody.PurchaseUnits[0].Amount.Value != "200.00" || gotBody.PurchaseUnits[0].Amount.Currency != "USD" {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
}

func TestPaypalProcessor_UpdateTransactionAmount(t *testing.T) {
	patched := false
	var patchBody []struct {
		Op    string            `json:"op"`
		Path  string            `json:"path"`
		Value map[string]string `json:"value"`
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/checkout/orders/ORDER1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patched = true
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &patchBody)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		value := "200.00"
		if patched {
			value = "250.00"
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ORDER1","status":"CREATED","purchase_units":[{"amount":{"currency_code":"USD","value":"` + value + `"}}]}`))
	})
	p := newPaypalTestServer(t, mux)

	tx, err := p.UpdateTransactionAmount(context.Background(), "ORDER1", 25000, "K2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !patched || len(patchBody) != 1 || patchBody[0].Op != "replace" || patchBody[0].Path != paypalAmountPath || patchBody[0].Value["value"] != "250.00" || patchBody[0].Value["currency_code"] != "USD" {
		t.Fatalf("unexpected patch: patched=%v body=%+v", patched, patchBody)
	}
	if tx.AmountMinor != 25000 {
		t.Fatalf("expected 25000, got %d", tx.AmountMinor)
	}
}

func TestPaypalProcessor_CaptureTransaction(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		var gotRequestID string
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/checkout/orders/ORDER1/capture", func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = r.Header.Get("PayPal-Request-Id")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORDER1","status":"COMPLETED","payer":{"email_address":"ada@example.com"},"purchase_units":[{"payments":{"captures":[{"id":"CAP1","status":"COMPLETED","amount":{"currency_code":"USD","value":"200.00"}}]}}]}`))
		})
		p := newPaypalTestServer(t, mux)

		res, err := p.CaptureTransaction(context.Background(), "ORDER1", "K3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Succeeded || res.CaptureID != "CAP1" || res.AmountMinor != 20000 || res.PayerEmail != "ada@example.com" {
			t.Fatalf("unexpected capture: %+v", res)
		}
		if gotRequestID != "K3" {
			t.Fatalf("expected request id K3, got %q", gotRequestID)
		}
	})

	t.Run("instrument declined", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/checkout/orders/ORDER1/capture", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","message":"The requested action could not be performed","details":[{"issue":"INSTRUMENT_DECLINED"}]}`))
		})
		p := newPaypalTestServer(t, mux)

		_, err := p.CaptureTransaction(context.Background(), "ORDER1", "K3")
		if !errors.Is(err, interfaces.ErrProcessorDeclined) {
			t.Fatalf("expected ErrProcessorDeclined, got %v", err)
		}
	})

	t.Run("already captured reads order", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/checkout/orders/ORDER1/capture", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_ALREADY_CAPTURED"}]}`))
		})
		mux.HandleFunc("/v2/checkout/orders/ORDER1", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"ORDER1","status":"COMPLETED","purchase_units":[{"amount":{"currency_code":"USD","value":"200.00"},"payments":{"captures":[{"id":"CAP1","status":"COMPLETED"}]}}]}`))
		})
		p := newPaypalTestServer(t, mux)

		res, err := p.CaptureTransaction(context.Background(), "ORDER1", "K3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Succeeded || res.AmountMinor != 20000 {
			t.Fatalf("unexpected capture: %+v", res)
		}
	})

	t.Run("server error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/checkout/orders/ORDER1/capture", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"name":"INTERNAL_SERVER_ERROR","message":"boom"}`))
		})
		p := newPaypalTestServer(t, mux)

		_, err := p.CaptureTransaction(context.Background(), "ORDER1", "K3")
		if !errors.Is(err, interfaces.ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", err)
		}
	})
}

func TestPaypalProcessor_GetTransaction_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/checkout/orders/MISSING", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"name":"RESOURCE_NOT_FOUND","message":"The specified resource does not exist.","details":[{"issue":"INVALID_RESOURCE_ID"}]}`))
	})
	p := newPaypalTestServer(t, mux)

	_, err := p.GetTransaction(context.Background(), "MISSING")
	if !errors.Is(err, interfaces.ErrProcessorRejected) {
		t.Fatalf("expected ErrProcessorRejected, got %v", err)
	}
	if errors.Is(err, interfaces.ErrProcessorUnavailable) {
		t.Fatalf("rejection must not be reported as unavailable: %v", err)
	}
}
