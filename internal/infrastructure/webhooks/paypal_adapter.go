package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
)

const (
	paypalEventCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"
	paypalStatusCompleted       = "COMPLETED"
	paypalVerificationSuccess   = "SUCCESS"
)

var ErrMissingPaypalWebhookID = errors.New("missing PAYPAL_WEBHOOK_ID")

// PaypalSignatureVerifier is satisfied by *paypal.Client.
type PaypalSignatureVerifier interface {
	VerifyWebhookSignature(ctx context.Context, httpReq *http.Request, webhookID string) (*paypal.VerifyWebhookResponse, error)
}

// TransactionReader resolves the description of a PayPal order, which the
// capture event does not carry.
type TransactionReader interface {
	GetTransaction(ctx context.Context, id string) (entities.ProcessorTransaction, error)
}

// PaypalAdapter verifies notifications through PayPal's
// verify-webhook-signature API and maps capture events to their order id.
type PaypalAdapter struct {
	verifier  PaypalSignatureVerifier
	orders    TransactionReader
	webhookID string
}

var _ interfaces.IWebhookAdapter = (*PaypalAdapter)(nil)

func NewPaypalAdapter(verifier PaypalSignatureVerifier, orders TransactionReader, webhookID string) (*PaypalAdapter, error) {
	if strings.TrimSpace(webhookID) == "" {
		return nil, ErrMissingPaypalWebhookID
	}
	return &PaypalAdapter{verifier: verifier, orders: orders, webhookID: webhookID}, nil
}

func (a *PaypalAdapter) Provider() string { return "paypal" }

func (a *PaypalAdapter) Verify(ctx context.Context, headers http.Header, rawBody []byte) error {
	if headers.Get("PAYPAL-TRANSMISSION-SIG") == "" {
		return fmt.Errorf("%w: missing transmission signature", interfaces.ErrWebhookSignatureInvalid)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/", bytes.NewReader(rawBody))
	if err != nil {
		return fmt.Errorf("%w: %w", interfaces.ErrWebhookPayloadInvalid, err)
	}
	req.Header = headers.Clone()

	resp, err := a.verifier.VerifyWebhookSignature(ctx, req, a.webhookID)
	if err != nil {
		log.Printf("[webhook][gateway] paypal verification call failed err=%v", err)
		return fmt.Errorf("%w: %w", interfaces.ErrProcessorUnavailable, err)
	}
	if resp == nil || resp.VerificationStatus != paypalVerificationSuccess {
		status := ""
		if resp != nil {
			status = resp.VerificationStatus
		}
		return fmt.Errorf("%w: verification_status=%s", interfaces.ErrWebhookSignatureInvalid, status)
	}
	return nil
}

type paypalWebhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID                string `json:"id"`
		Status            string `json:"status"`
		SupplementaryData struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
	} `json:"resource"`
}

// ExtractEventCore keys the event by PayPal order id, the id stored on the
// order at reconcile time. The order description is fetched only for
// relevant events.
func (a *PaypalAdapter) ExtractEventCore(ctx context.Context, rawBody []byte) (entities.WebhookEventCore, error) {
	var ev paypalWebhookEvent
	if err := json.Unmarshal(rawBody, &ev); err != nil {
		return entities.WebhookEventCore{}, fmt.Errorf("%w: %w", interfaces.ErrWebhookPayloadInvalid, err)
	}
	if ev.EventType == "" {
		return entities.WebhookEventCore{}, fmt.Errorf("%w: missing event_type", interfaces.ErrWebhookPayloadInvalid)
	}

	core := entities.WebhookEventCore{
		EventID:       ev.ID,
		EventType:     ev.EventType,
		TransactionID: ev.Resource.SupplementaryData.RelatedIDs.OrderID,
		Status:        ev.Resource.Status,
	}
	if core.TransactionID == "" {
		core.TransactionID = ev.Resource.ID
	}
	core.Relevant = ev.EventType == paypalEventCaptureCompleted && ev.Resource.Status == paypalStatusCompleted
	if !core.Relevant {
		return core, nil
	}

	tx, err := a.orders.GetTransaction(ctx, core.TransactionID)
	if err != nil {
		log.Printf("[webhook][gateway] paypal order lookup failed order_id=%s err=%v", core.TransactionID, err)
		return entities.WebhookEventCore{}, err
	}
	core.Description = tx.Description
	log.Printf("[webhook][gateway] paypal event event_id=%s type=%s order_id=%s", ev.ID, ev.EventType, core.TransactionID)
	return core, nil
}
