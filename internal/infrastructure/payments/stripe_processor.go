package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeProcessor implements IPaymentProcessor over Stripe PaymentIntents.
// Intents are created with manual capture so the amount can still change
// while the registrant edits the cart.
type StripeProcessor struct {
	client *client.API
}

var _ interfaces.IPaymentProcessor = (*StripeProcessor)(nil)

// NewStripeProcessor builds a client bound to secretKey. backends may be nil;
// tests pass backends pointing at a local server.
func NewStripeProcessor(secretKey string, backends *stripe.Backends) (*StripeProcessor, error) {
	if strings.TrimSpace(secretKey) == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	sc := &client.API{}
	sc.Init(secretKey, backends)
	log.Printf("[payment][gateway] Stripe client initialized")
	return &StripeProcessor{client: sc}, nil
}

func (p *StripeProcessor) Name() string { return "stripe" }

func (p *StripeProcessor) CreateTransaction(ctx context.Context, req entities.CreateTransactionRequest) (entities.ProcessorTransaction, error) {
	customerID, err := p.findOrCreateCustomer(ctx, req.Customer, req.IdempotencyKey)
	if err != nil {
		log.Printf("[payment][gateway] stripe customer lookup failed err=%v", err)
		return entities.ProcessorTransaction{}, mapStripeError(err)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		Description:   stripe.String(req.Description),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	if req.Customer.Email != "" {
		params.ReceiptEmail = stripe.String(req.Customer.Email)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	pi, err := p.client.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway] stripe create intent failed err=%v", err)
		return entities.ProcessorTransaction{}, mapStripeError(err)
	}
	log.Printf("[payment][gateway] stripe intent created id=%s amount=%d", pi.ID, pi.Amount)
	return toStripeTransaction(pi), nil
}

func (p *StripeProcessor) GetTransaction(ctx context.Context, id string) (entities.ProcessorTransaction, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := p.client.PaymentIntents.Get(id, params)
	if err != nil {
		return entities.ProcessorTransaction{}, mapStripeError(err)
	}
	return toStripeTransaction(pi), nil
}

func (p *StripeProcessor) UpdateTransactionAmount(ctx context.Context, id string, amountMinor int64, idempotencyKey string) (entities.ProcessorTransaction, error) {
	params := &stripe.PaymentIntentParams{Amount: stripe.Int64(amountMinor)}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	pi, err := p.client.PaymentIntents.Update(id, params)
	if err != nil {
		log.Printf("[payment][gateway] stripe update intent failed id=%s err=%v", id, err)
		return entities.ProcessorTransaction{}, mapStripeError(err)
	}
	return toStripeTransaction(pi), nil
}

// CaptureTransaction finishes whatever step the intent is waiting on:
// capture an authorized intent, confirm an unconfirmed one, or accept an
// already succeeded one.
func (p *StripeProcessor) CaptureTransaction(ctx context.Context, id string, idempotencyKey string) (entities.ProcessorCapture, error) {
	get := &stripe.PaymentIntentParams{}
	get.Context = ctx
	get.AddExpand("latest_charge")
	pi, err := p.client.PaymentIntents.Get(id, get)
	if err != nil {
		return entities.ProcessorCapture{}, mapStripeError(err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusRequiresCapture:
		params := &stripe.PaymentIntentCaptureParams{}
		params.Context = ctx
		params.SetIdempotencyKey(idempotencyKey)
		params.AddExpand("latest_charge")
		pi, err = p.client.PaymentIntents.Capture(id, params)
	case stripe.PaymentIntentStatusRequiresConfirmation:
		params := &stripe.PaymentIntentConfirmParams{}
		params.Context = ctx
		params.SetIdempotencyKey(idempotencyKey)
		params.AddExpand("latest_charge")
		pi, err = p.client.PaymentIntents.Confirm(id, params)
	}
	if err != nil {
		log.Printf("[payment][gateway] stripe capture failed id=%s err=%v", id, err)
		return entities.ProcessorCapture{}, mapStripeError(err)
	}

	out := entities.ProcessorCapture{
		TransactionID: pi.ID,
		AmountMinor:   pi.AmountReceived,
		Status:        string(pi.Status),
		Succeeded:     pi.Status == stripe.PaymentIntentStatusSucceeded,
		PayerEmail:    pi.ReceiptEmail,
	}
	if out.AmountMinor == 0 {
		out.AmountMinor = pi.Amount
	}
	if pi.LatestCharge != nil {
		out.CaptureID = pi.LatestCharge.ID
		if out.PayerEmail == "" && pi.LatestCharge.BillingDetails != nil {
			out.PayerEmail = pi.LatestCharge.BillingDetails.Email
		}
	}
	return out, nil
}

func (p *StripeProcessor) findOrCreateCustomer(ctx context.Context, c entities.Customer, idempotencyKey string) (string, error) {
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return "", nil
	}

	list := &stripe.CustomerListParams{Email: stripe.String(email)}
	list.Context = ctx
	list.Limit = stripe.Int64(1)
	it := p.client.Customers.List(list)
	if it.Next() {
		return it.Customer().ID, nil
	}
	if err := it.Err(); err != nil {
		return "", err
	}

	params := &stripe.CustomerParams{Email: stripe.String(email)}
	if c.Name != "" {
		params.Name = stripe.String(c.Name)
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey + "-customer")
	}
	cust, err := p.client.Customers.New(params)
	if err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] stripe customer created id=%s", cust.ID)
	return cust.ID, nil
}

func toStripeTransaction(pi *stripe.PaymentIntent) entities.ProcessorTransaction {
	return entities.ProcessorTransaction{
		ID:           pi.ID,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		Description:  pi.Description,
		ClientSecret: pi.ClientSecret,
	}
}

// mapStripeError classifies Stripe failures. The original message and code
// stay in the chain for support diagnosis.
func mapStripeError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %w", interfaces.ErrProcessorUnavailable, err)
	}
	switch {
	case se.Type == stripe.ErrorTypeCard || se.HTTPStatusCode == http.StatusPaymentRequired:
		return fmt.Errorf("%w: stripe %s: %s", interfaces.ErrProcessorDeclined, se.Code, se.Msg)
	case se.HTTPStatusCode >= http.StatusInternalServerError || se.HTTPStatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: stripe %d: %s", interfaces.ErrProcessorUnavailable, se.HTTPStatusCode, se.Msg)
	default:
		return fmt.Errorf("%w: stripe %d %s: %s", interfaces.ErrProcessorRejected, se.HTTPStatusCode, se.Code, se.Msg)
	}
}
