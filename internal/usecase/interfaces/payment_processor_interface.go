package interfaces

import (
	"context"
	"errors"

	"event_registration/internal/domain/entities"
)

var (
	// ErrProcessorDeclined means the processor answered and refused the request.
	ErrProcessorDeclined = errors.New("payment processor declined the request")
	// ErrProcessorUnavailable means the processor could not be reached or failed internally.
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
	// ErrProcessorRejected means the request itself was invalid for the
	// processor (unknown id, wrong state). Repeating it cannot succeed.
	ErrProcessorRejected = errors.New("payment processor rejected the request")
)

// IPaymentProcessor abstracts an external payment processor (Stripe, PayPal).
//
// Mutating calls carry the caller's idempotency key so a retried request can
// never charge twice.
type IPaymentProcessor interface {
	Name() string
	CreateTransaction(ctx context.Context, req entities.CreateTransactionRequest) (entities.ProcessorTransaction, error)
	GetTransaction(ctx context.Context, id string) (entities.ProcessorTransaction, error)
	UpdateTransactionAmount(ctx context.Context, id string, amountMinor int64, idempotencyKey string) (entities.ProcessorTransaction, error)
	CaptureTransaction(ctx context.Context, id string, idempotencyKey string) (entities.ProcessorCapture, error)
}
