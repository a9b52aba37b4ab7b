package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"
)

// IOrderUseCase covers the pending order store and order finalization.
//
//   - SaveDraft persists a pending order (create when id is empty, overwrite otherwise)
//     and must run before any capture so a charged payment always has a record.
//   - Finalize moves pending -> final exactly once; repeating it with the same
//     arguments is a no-op.
type IOrderUseCase interface {
	SaveDraft(ctx context.Context, id string, o entities.Order) (string, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Finalize(ctx context.Context, orderID, transactionID string, amount float64) (entities.Order, error)
	FinalizeCheck(ctx context.Context, orderID string) (entities.Order, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	publisher interfaces.IOrderEventPublisher
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, publisher interfaces.IOrderEventPublisher) *OrderUseCase {
	return &OrderUseCase{repo: repo, publisher: publisher, now: func() time.Time { return time.Now().UTC() }}
}

func (u *OrderUseCase) SaveDraft(ctx context.Context, id string, o entities.Order) (string, error) {
	id = strings.TrimSpace(id)
	log.Printf("[order][usecase] save-draft start order_id=%q people=%d total=%.2f", id, len(o.People), o.Total)

	if len(o.People) == 0 {
		return "", fmt.Errorf("%w: order has no people", ErrInvalidArgument)
	}
	if !entities.AmountsEqual(o.Total, o.ExpectedTotal()) {
		log.Printf("[order][usecase] total mismatch total=%.2f expected=%.2f", o.Total, o.ExpectedTotal())
		return "", fmt.Errorf("%w: total %.2f does not match items %.2f", ErrInvalidArgument, o.Total, o.ExpectedTotal())
	}
	if o.PaymentMethod != "" && !o.PaymentMethod.Valid() {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, o.PaymentMethod)
	}

	now := u.now()
	o.Status = entities.OrderStatusPending
	o.Charged = 0
	o.FinalizedAt = nil
	o.CreatedAt = now
	o.UpdatedAt = now

	if id != "" {
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			log.Printf("[order][usecase] load for overwrite failed order_id=%s err=%v", id, err)
			return "", fmt.Errorf("%w: %w", ErrDatabaseRead, err)
		}
		if existing.ID == "" {
			return "", ErrOrderNotFound
		}
		if existing.IsFinal() {
			log.Printf("[order][usecase] refusing to overwrite final order order_id=%s", id)
			return "", ErrOrderAlreadyFinalized
		}
		if !existing.CreatedAt.IsZero() {
			o.CreatedAt = existing.CreatedAt
		}
	}
	o.ID = id

	savedID, err := u.repo.Save(ctx, id, o)
	if errors.Is(err, interfaces.ErrOrderNotPending) {
		log.Printf("[order][usecase] order finalized concurrently order_id=%s", id)
		return "", ErrOrderAlreadyFinalized
	}
	if err != nil {
		log.Printf("[order][usecase] save failed order_id=%q err=%v", id, err)
		return "", fmt.Errorf("%w: %w", ErrDatabaseSave, err)
	}
	log.Printf("[order][usecase] save-draft success order_id=%s payment_id=%s", savedID, o.PaymentID)
	return savedID, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, fmt.Errorf("%w: order id is required", ErrInvalidArgument)
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", ErrDatabaseRead, err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Finalize(ctx context.Context, orderID, transactionID string, amount float64) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	transactionID = strings.TrimSpace(transactionID)
	log.Printf("[order][usecase] finalize start order_id=%s transaction_id=%s amount=%.2f", orderID, transactionID, amount)

	if orderID == "" || transactionID == "" {
		return entities.Order{}, fmt.Errorf("%w: order id and transaction id are required", ErrInvalidArgument)
	}
	if amount < 0 || (amount == 0 && transactionID != entities.CheckTransactionID) {
		return entities.Order{}, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}

	o, transitioned, err := u.repo.MarkFinal(ctx, orderID, transactionID, amount)
	if err != nil {
		log.Printf("[order][usecase] mark final failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, fmt.Errorf("%w: %w", ErrDatabaseSave, err)
	}

	if !transitioned {
		switch {
		case o.ID == "":
			log.Printf("[order][usecase] finalize order not found order_id=%s", orderID)
			return entities.Order{}, ErrOrderNotFound
		case o.IsFinal() && o.PaymentID == transactionID && entities.AmountsEqual(o.Charged, amount):
			log.Printf("[order][usecase] finalize repeated; already final order_id=%s", orderID)
			return o, nil
		default:
			log.Printf("[order][usecase] finalize conflict order_id=%s stored_payment_id=%s stored_charged=%.2f", orderID, o.PaymentID, o.Charged)
			return o, ErrOrderAlreadyFinalized
		}
	}

	if err := u.publisher.PublishOrderFinalized(ctx, o); err != nil {
		// The order is final either way; consumers can reconcile from the store.
		log.Printf("[order][usecase] publish order.finalized failed order_id=%s err=%v", orderID, err)
	}
	log.Printf("[order][usecase] finalize success order_id=%s transaction_id=%s charged=%.2f", orderID, transactionID, o.Charged)
	return o, nil
}

// FinalizeCheck finalizes an order paid offline: no processor is involved and
// nothing is charged.
func (u *OrderUseCase) FinalizeCheck(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentMethod != entities.PaymentMethodCheck {
		return entities.Order{}, fmt.Errorf("%w: order payment method is %q", ErrInvalidArgument, o.PaymentMethod)
	}
	return u.Finalize(ctx, o.ID, entities.CheckTransactionID, 0)
}
