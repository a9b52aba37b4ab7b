package interfaces

import (
	"context"
	"errors"

	"event_registration/internal/domain/entities"
)

// ErrOrderNotPending is returned by Save when an overwrite targets an order
// that has already left the pending state.
var ErrOrderNotPending = errors.New("order is not pending")

// IOrderRepository abstracts persistence for registration orders.
//
// Lookups return a zero Order (ID == "") when nothing matches.
// MarkFinal performs the pending -> final transition atomically. When the
// order is not pending it returns the stored order with transitioned=false.

type IOrderRepository interface {
	Save(ctx context.Context, id string, o entities.Order) (string, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Order, error)
	MarkFinal(ctx context.Context, id, transactionID string, amount float64) (o entities.Order, transitioned bool, err error)
}
