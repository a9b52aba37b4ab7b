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

	"github.com/plutov/paypal/v4"
)

var ErrMissingPaypalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")

const (
	paypalStatusCompleted      = "COMPLETED"
	paypalIssueAlreadyCaptured = "ORDER_ALREADY_CAPTURED"
	paypalAmountPath           = "/purchase_units/@reference_id=='default'/amount"
)

// PaypalProcessor implements IPaymentProcessor over PayPal Orders v2. A
// transaction id is a PayPal order id.
type PaypalProcessor struct {
	client *paypal.Client
}

var _ interfaces.IPaymentProcessor = (*PaypalProcessor)(nil)

func NewPaypalProcessor(clientID, clientSecret, apiBase string) (*PaypalProcessor, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		log.Printf("[payment][gateway] missing PayPal credentials")
		return nil, ErrMissingPaypalCredentials
	}
	c, err := paypal.NewClient(clientID, clientSecret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}
	log.Printf("[payment][gateway] PayPal client initialized api_base=%s", apiBase)
	return &PaypalProcessor{client: c}, nil
}

// Client exposes the authenticated client for webhook signature checks.
func (p *PaypalProcessor) Client() *paypal.Client { return p.client }

func (p *PaypalProcessor) Name() string { return "paypal" }

// CreateTransaction creates a CAPTURE-intent order. PayPal's create call has no
// payer prefill, so the customer's email is only known after approval.
func (p *PaypalProcessor) CreateTransaction(ctx context.Context, req entities.CreateTransactionRequest) (entities.ProcessorTransaction, error) {
	units := []paypal.PurchaseUnitRequest{{
		Amount:      paypalAmount(req.Currency, req.AmountMinor),
		Description: req.Description,
	}}
	order, err := p.client.CreateOrderWithPaypalRequestID(ctx, paypal.OrderIntentCapture, units, nil, nil, req.IdempotencyKey)
	if err != nil {
		log.Printf("[payment][gateway] paypal create order failed err=%v", err)
		return entities.ProcessorTransaction{}, mapPaypalError(err)
	}
	log.Printf("[payment][gateway] paypal order created id=%s status=%s", order.ID, order.Status)
	return toPaypalTransaction(order), nil
}

func (p *PaypalProcessor) GetTransaction(ctx context.Context, id string) (entities.ProcessorTransaction, error) {
	order, err := p.client.GetOrder(ctx, id)
	if err != nil {
		return entities.ProcessorTransaction{}, mapPaypalError(err)
	}
	return toPaypalTransaction(order), nil
}

// UpdateTransactionAmount patches the order amount. PayPal PATCH is naturally
// idempotent and does not take a request id.
func (p *PaypalProcessor) UpdateTransactionAmount(ctx context.Context, id string, amountMinor int64, idempotencyKey string) (entities.ProcessorTransaction, error) {
	current, err := p.client.GetOrder(ctx, id)
	if err != nil {
		return entities.ProcessorTransaction{}, mapPaypalError(err)
	}
	currency := "USD"
	if len(current.PurchaseUnits) > 0 && current.PurchaseUnits[0].Amount != nil {
		currency = current.PurchaseUnits[0].Amount.Currency
	}

	amount := paypalAmount(currency, amountMinor)
	value := map[string]string{"currency_code": amount.Currency, "value": amount.Value}
	if err := p.client.UpdateOrder(ctx, id, "replace", paypalAmountPath, value); err != nil {
		log.Printf("[payment][gateway] paypal update order failed id=%s key=%s err=%v", id, idempotencyKey, err)
		return entities.ProcessorTransaction{}, mapPaypalError(err)
	}
	return p.GetTransaction(ctx, id)
}

func (p *PaypalProcessor) CaptureTransaction(ctx context.Context, id string, idempotencyKey string) (entities.ProcessorCapture, error) {
	captured, err := p.client.CaptureOrderWithPaypalRequestId(ctx, id, paypal.CaptureOrderRequest{}, idempotencyKey, nil)
	if err == nil {
		out := entities.ProcessorCapture{TransactionID: captured.ID, Status: captured.Status}
		var payments []*paypal.CapturedPayments
		for _, pu := range captured.PurchaseUnits {
			payments = append(payments, pu.Payments)
		}
		fillCapture(&out, captured.Payer, payments, nil)
		return out, nil
	}

	err = mapPaypalError(err)
	if !errors.Is(err, errPaypalAlreadyCaptured) {
		log.Printf("[payment][gateway] paypal capture failed id=%s err=%v", id, err)
		return entities.ProcessorCapture{}, err
	}
	log.Printf("[payment][gateway] paypal order already captured id=%s", id)
	order, err := p.client.GetOrder(ctx, id)
	if err != nil {
		return entities.ProcessorCapture{}, mapPaypalError(err)
	}
	out := entities.ProcessorCapture{TransactionID: order.ID, Status: order.Status}
	var payments []*paypal.CapturedPayments
	var unitAmount *paypal.PurchaseUnitAmount
	for i, pu := range order.PurchaseUnits {
		payments = append(payments, pu.Payments)
		if i == 0 {
			unitAmount = pu.Amount
		}
	}
	fillCapture(&out, order.Payer, payments, unitAmount)
	return out, nil
}

// fillCapture reads the first capture of the first purchase unit. Success
// needs both the order and that capture COMPLETED.
func fillCapture(out *entities.ProcessorCapture, payer *paypal.PayerWithNameAndPhone, payments []*paypal.CapturedPayments, unitAmount *paypal.PurchaseUnitAmount) {
	out.Succeeded = out.Status == paypalStatusCompleted
	if payer != nil {
		out.PayerEmail = payer.EmailAddress
	}
	if len(payments) > 0 && payments[0] != nil && len(payments[0].Captures) > 0 {
		c := payments[0].Captures[0]
		out.CaptureID = c.ID
		out.Succeeded = out.Succeeded && c.Status == paypalStatusCompleted
		out.AmountMinor = minorFromPaypal(c.Amount)
	}
	if out.AmountMinor == 0 {
		out.AmountMinor = minorFromPaypal(unitAmount)
	}
}

var errPaypalAlreadyCaptured = errors.New("paypal order already captured")

// mapPaypalError classifies PayPal failures: 422 business rejections are
// declines, 5xx and 429 are outages, any other 4xx is a rejected request.
func mapPaypalError(err error) error {
	var pe *paypal.ErrorResponse
	if !errors.As(err, &pe) || pe.Response == nil {
		return fmt.Errorf("%w: %w", interfaces.ErrProcessorUnavailable, err)
	}
	status := pe.Response.StatusCode
	for _, d := range pe.Details {
		if d.Issue == paypalIssueAlreadyCaptured {
			return errPaypalAlreadyCaptured
		}
	}
	switch {
	case status == http.StatusUnprocessableEntity || status == http.StatusPaymentRequired:
		return fmt.Errorf("%w: paypal %s: %s", interfaces.ErrProcessorDeclined, pe.Name, pe.Message)
	case status >= http.StatusInternalServerError || status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: paypal %d: %s", interfaces.ErrProcessorUnavailable, status, pe.Message)
	default:
		return fmt.Errorf("%w: paypal %d %s: %s", interfaces.ErrProcessorRejected, status, pe.Name, pe.Message)
	}
}

func paypalAmount(currency string, minor int64) *paypal.PurchaseUnitAmount {
	return &paypal.PurchaseUnitAmount{
		Currency: strings.ToUpper(currency),
		Value:    entities.FormatAmount(entities.FromMinorUnits(minor)),
	}
}

func minorFromPaypal(a *paypal.PurchaseUnitAmount) int64 {
	if a == nil {
		return 0
	}
	v, err := entities.ParseAmount(a.Value)
	if err != nil {
		log.Printf("[payment][gateway] paypal amount unparsable value=%q", a.Value)
		return 0
	}
	return entities.ToMinorUnits(v)
}

func toPaypalTransaction(o *paypal.Order) entities.ProcessorTransaction {
	tx := entities.ProcessorTransaction{ID: o.ID, Status: o.Status}
	if len(o.PurchaseUnits) > 0 {
		pu := o.PurchaseUnits[0]
		tx.Description = pu.Description
		tx.AmountMinor = minorFromPaypal(pu.Amount)
		if pu.Amount != nil {
			tx.Currency = pu.Amount.Currency
		}
	}
	for _, l := range o.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			tx.ApprovalURL = l.Href
		}
	}
	return tx
}
