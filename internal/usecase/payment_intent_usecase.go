package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"
)

// ReconcileInput describes the transaction the client needs to exist.
// ExistingID is empty on the first attempt of a checkout.
type ReconcileInput struct {
	ExistingID     string
	Amount         float64
	Currency       string
	IdempotencyKey string
	Customer       entities.Customer
}

// IPaymentIntentUseCase creates or resizes the processor transaction of a checkout.
type IPaymentIntentUseCase interface {
	Reconcile(ctx context.Context, in ReconcileInput) (entities.PaymentIntent, error)
}

// PaymentIntentDefaults fills the currency when the caller leaves it empty.
// Description is stamped on every transaction; webhooks use it to tell this
// app's payments from others on the same processor account.
type PaymentIntentDefaults struct {
	Currency    string
	Description string
}

type PaymentIntentUseCase struct {
	processor interfaces.IPaymentProcessor
	defaults  PaymentIntentDefaults
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(processor interfaces.IPaymentProcessor, defaults PaymentIntentDefaults) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{processor: processor, defaults: defaults}
}

// Reconcile creates a transaction when none exists, otherwise retrieves it and
// updates its amount only when it differs from the requested one.
func (u *PaymentIntentUseCase) Reconcile(ctx context.Context, in ReconcileInput) (entities.PaymentIntent, error) {
	in.ExistingID = strings.TrimSpace(in.ExistingID)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	log.Printf("[payment][usecase] reconcile start existing_id=%q amount=%.2f", in.ExistingID, in.Amount)

	if in.Amount <= 0 {
		log.Printf("[payment][usecase] invalid amount amount=%.2f", in.Amount)
		return entities.PaymentIntent{}, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	if in.IdempotencyKey == "" {
		return entities.PaymentIntent{}, fmt.Errorf("%w: idempotency key is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Currency) == "" {
		in.Currency = u.defaults.Currency
	}
	amountMinor := entities.ToMinorUnits(in.Amount)

	if in.ExistingID == "" {
		tx, err := u.processor.CreateTransaction(ctx, entities.CreateTransactionRequest{
			AmountMinor:    amountMinor,
			Currency:       in.Currency,
			Description:    u.defaults.Description,
			IdempotencyKey: in.IdempotencyKey,
			Customer:       in.Customer,
		})
		if err != nil {
			log.Printf("[payment][usecase] create transaction failed processor=%s err=%v", u.processor.Name(), err)
			return entities.PaymentIntent{}, wrapProcessorError(err)
		}
		log.Printf("[payment][usecase] transaction created processor=%s id=%s amount_minor=%d", u.processor.Name(), tx.ID, tx.AmountMinor)
		return u.toPaymentIntent(tx, in.Currency), nil
	}

	tx, err := u.processor.GetTransaction(ctx, in.ExistingID)
	if err != nil {
		log.Printf("[payment][usecase] retrieve transaction failed id=%s err=%v", in.ExistingID, err)
		return entities.PaymentIntent{}, wrapProcessorError(err)
	}
	if tx.AmountMinor == amountMinor {
		log.Printf("[payment][usecase] transaction unchanged id=%s amount_minor=%d", tx.ID, tx.AmountMinor)
		return u.toPaymentIntent(tx, in.Currency), nil
	}

	log.Printf("[payment][usecase] resizing transaction id=%s from=%d to=%d", tx.ID, tx.AmountMinor, amountMinor)
	updated, err := u.processor.UpdateTransactionAmount(ctx, tx.ID, amountMinor, in.IdempotencyKey)
	if err != nil {
		log.Printf("[payment][usecase] update transaction failed id=%s err=%v", tx.ID, err)
		return entities.PaymentIntent{}, wrapProcessorError(err)
	}
	if updated.ID == "" {
		updated.ID = tx.ID
	}
	if updated.ClientSecret == "" {
		updated.ClientSecret = tx.ClientSecret
	}
	if updated.ApprovalURL == "" {
		updated.ApprovalURL = tx.ApprovalURL
	}
	return u.toPaymentIntent(updated, in.Currency), nil
}

func (u *PaymentIntentUseCase) toPaymentIntent(tx entities.ProcessorTransaction, currency string) entities.PaymentIntent {
	if tx.Currency != "" {
		currency = tx.Currency
	}
	return entities.PaymentIntent{
		ID:           tx.ID,
		Processor:    u.processor.Name(),
		Amount:       entities.FromMinorUnits(tx.AmountMinor),
		Currency:     strings.ToUpper(currency),
		ClientSecret: tx.ClientSecret,
		ApprovalURL:  tx.ApprovalURL,
	}
}

// wrapProcessorError keeps the processor's message and classification visible
// behind ErrExternalPaymentAPI.
func wrapProcessorError(err error) error {
	if errors.Is(err, interfaces.ErrProcessorDeclined) {
		return fmt.Errorf("%w: %w: %w", ErrExternalPaymentAPI, ErrPaymentDeclined, err)
	}
	if errors.Is(err, interfaces.ErrProcessorRejected) {
		return fmt.Errorf("%w: %w: %w", ErrExternalPaymentAPI, ErrPaymentRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrExternalPaymentAPI, err)
}
