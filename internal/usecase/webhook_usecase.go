package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"
	"event_registration/pkg/retry"
)

// IWebhookUseCase verifies and reconciles one processor notification.
type IWebhookUseCase interface {
	Handle(ctx context.Context, adapter interfaces.IWebhookAdapter, headers http.Header, body []byte) (entities.WebhookOutcome, error)
}

type WebhookConfig struct {
	// ExpectedDescription correlates processor transactions with this app.
	// Relevant events carrying any other description belong to someone else.
	ExpectedDescription string
	LookupRetry         retry.Options
	OperatorEmails      []string
}

type WebhookUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.INotifier
	metrics  interfaces.IMetrics
	cfg      WebhookConfig
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

var errOrderNotVisible = errors.New("order not visible yet")

func NewWebhookUseCase(repo interfaces.IOrderRepository, notifier interfaces.INotifier, metrics interfaces.IMetrics, cfg WebhookConfig) *WebhookUseCase {
	return &WebhookUseCase{repo: repo, notifier: notifier, metrics: metrics, cfg: cfg}
}

// Handle verifies the signature, drops irrelevant events, then looks the
// transaction up with bounded backoff because the client's order write may
// land after the processor's notification. An order that never shows up is
// reported once to the operators and acknowledged so the processor stops
// redelivering.
func (u *WebhookUseCase) Handle(ctx context.Context, adapter interfaces.IWebhookAdapter, headers http.Header, body []byte) (entities.WebhookOutcome, error) {
	provider := adapter.Provider()
	dims := map[string]string{"Provider": provider}

	if err := adapter.Verify(ctx, headers, body); err != nil {
		if errors.Is(err, interfaces.ErrWebhookSignatureInvalid) {
			log.Printf("[webhook][usecase] signature rejected provider=%s err=%v", provider, err)
			u.metrics.Increment(ctx, interfaces.MetricWebhookSignatureInvalid, dims)
			return "", fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
		}
		log.Printf("[webhook][usecase] signature check unavailable provider=%s err=%v", provider, err)
		return "", wrapProcessorError(err)
	}

	core, err := adapter.ExtractEventCore(ctx, body)
	if err != nil {
		if errors.Is(err, interfaces.ErrWebhookPayloadInvalid) {
			log.Printf("[webhook][usecase] unparseable payload ignored provider=%s err=%v", provider, err)
			u.metrics.Increment(ctx, interfaces.MetricWebhookIgnored, dims)
			return entities.WebhookOutcomeIgnored, nil
		}
		log.Printf("[webhook][usecase] extract failed provider=%s err=%v", provider, err)
		return "", wrapProcessorError(err)
	}

	if !core.Relevant {
		log.Printf("[webhook][usecase] ignored provider=%s event_type=%s status=%s", provider, core.EventType, core.Status)
		u.metrics.Increment(ctx, interfaces.MetricWebhookIgnored, dims)
		return entities.WebhookOutcomeIgnored, nil
	}
	if strings.TrimSpace(core.Description) != strings.TrimSpace(u.cfg.ExpectedDescription) {
		log.Printf("[webhook][usecase] foreign transaction ignored provider=%s transaction_id=%s description=%q", provider, core.TransactionID, core.Description)
		u.metrics.Increment(ctx, interfaces.MetricWebhookIgnored, dims)
		return entities.WebhookOutcomeIgnored, nil
	}

	opts := u.cfg.LookupRetry
	opts.OnRetry = func(attempt int, next time.Duration, err error) {
		log.Printf("[webhook][usecase] lookup attempt=%d missed transaction_id=%s retry_in=%s err=%v", attempt, core.TransactionID, next, err)
	}

	var order entities.Order
	err = retry.Do(ctx, opts, func(ctx context.Context) error {
		o, err := u.repo.GetByTransactionID(ctx, core.TransactionID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDatabaseRead, err)
		}
		if o.ID == "" {
			return errOrderNotVisible
		}
		order = o
		return nil
	})

	switch {
	case err == nil:
		if order.IsFinal() {
			log.Printf("[webhook][usecase] matched provider=%s transaction_id=%s order_id=%s", provider, core.TransactionID, order.ID)
		} else {
			log.Printf("[webhook][usecase] matched pending order provider=%s transaction_id=%s order_id=%s status=%s", provider, core.TransactionID, order.ID, order.Status)
		}
		u.metrics.Increment(ctx, interfaces.MetricWebhookMatched, dims)
		return entities.WebhookOutcomeMatched, nil

	case errors.Is(err, errOrderNotVisible):
		log.Printf("[webhook][usecase] no order for completed payment provider=%s transaction_id=%s", provider, core.TransactionID)
		u.metrics.Increment(ctx, interfaces.MetricWebhookUnmatched, dims)
		u.notifyUnmatched(ctx, provider, core)
		return entities.WebhookOutcomeUnmatched, nil

	default:
		log.Printf("[webhook][usecase] lookup failed provider=%s transaction_id=%s err=%v", provider, core.TransactionID, err)
		return "", err
	}
}

func (u *WebhookUseCase) notifyUnmatched(ctx context.Context, provider string, core entities.WebhookEventCore) {
	if len(u.cfg.OperatorEmails) == 0 {
		log.Printf("[webhook][usecase] no operator recipients configured; skipping notification transaction_id=%s", core.TransactionID)
		return
	}
	msg := entities.MailMessage{
		To:      u.cfg.OperatorEmails,
		Subject: fmt.Sprintf("Payment without order: %s %s", provider, core.TransactionID),
		Body: fmt.Sprintf(
			"A completed %s payment has no matching registration order.\n\nTransaction: %s\nEvent: %s (%s)\nStatus: %s\nDescription: %s\nReceived: %s\n\nCheck the processor dashboard and contact the payer.",
			provider, core.TransactionID, core.EventID, core.EventType, core.Status, core.Description, time.Now().UTC().Format(time.RFC3339),
		),
	}
	if err := u.notifier.SendMail(ctx, msg); err != nil {
		log.Printf("[webhook][usecase] operator notification failed transaction_id=%s err=%v", core.TransactionID, err)
	}
}
