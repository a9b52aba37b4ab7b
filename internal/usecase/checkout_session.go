package usecase

import (
	"context"
	"fmt"
	"log"

	"event_registration/internal/domain/entities"
)

// CheckoutSession drives one registrant's checkout: save the draft, reconcile
// the processor transaction, capture it and finalize the order.
//
// It owns the attempt-scoped idempotency key. Every call to Reconcile or
// Capture is one attempt; the key is rotated after it ends, successfully or
// not, so editing the cart and retrying never replays a finished request.
type CheckoutSession struct {
	orders   IOrderUseCase
	intents  IPaymentIntentUseCase
	captures ICaptureUseCase
	keys     *IdempotencyKeyManager

	orderID string
	intent  entities.PaymentIntent
}

func NewCheckoutSession(orders IOrderUseCase, intents IPaymentIntentUseCase, captures ICaptureUseCase) *CheckoutSession {
	return &CheckoutSession{
		orders:   orders,
		intents:  intents,
		captures: captures,
		keys:     NewIdempotencyKeyManager(),
	}
}

func (s *CheckoutSession) OrderID() string { return s.orderID }

func (s *CheckoutSession) Intent() entities.PaymentIntent { return s.intent }

// CurrentKey is the key the next attempt will send.
func (s *CheckoutSession) CurrentKey() string { return s.keys.Issue() }

// PreparePayment sizes the transaction to the order total and stores the
// draft with the transaction id. The draft is always written before any
// capture.
func (s *CheckoutSession) PreparePayment(ctx context.Context, o entities.Order) (entities.PaymentIntent, error) {
	purchaser := o.Purchaser()
	key := s.keys.Issue()
	intent, err := s.intents.Reconcile(ctx, ReconcileInput{
		ExistingID:     s.intent.ID,
		Amount:         o.Total,
		IdempotencyKey: key,
		Customer:       entities.Customer{Email: purchaser.Email, Name: purchaser.FullName()},
	})
	s.keys.Rotate()
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	s.intent = intent

	o.PaymentID = intent.ID
	id, err := s.orders.SaveDraft(ctx, s.orderID, o)
	if err != nil {
		return intent, err
	}
	s.orderID = id
	log.Printf("[order][session] payment prepared order_id=%s transaction_id=%s amount=%.2f", id, intent.ID, intent.Amount)
	return intent, nil
}

// Complete captures the prepared transaction and finalizes the order with the
// amount the processor reports as charged.
func (s *CheckoutSession) Complete(ctx context.Context) (entities.Order, error) {
	if s.intent.ID == "" || s.orderID == "" {
		return entities.Order{}, fmt.Errorf("%w: payment has not been prepared", ErrInvalidArgument)
	}
	key := s.keys.Issue()
	res, err := s.captures.Capture(ctx, s.intent.ID, key)
	s.keys.Rotate()
	if err != nil {
		return entities.Order{}, err
	}
	return s.orders.Finalize(ctx, s.orderID, s.intent.ID, res.Amount)
}
