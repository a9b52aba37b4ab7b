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

// ICaptureUseCase captures an approved transaction.
type ICaptureUseCase interface {
	Capture(ctx context.Context, transactionID, idempotencyKey string) (entities.CaptureResult, error)
}

type CaptureUseCase struct {
	processor interfaces.IPaymentProcessor
}

var _ ICaptureUseCase = (*CaptureUseCase)(nil)

func NewCaptureUseCase(processor interfaces.IPaymentProcessor) *CaptureUseCase {
	return &CaptureUseCase{processor: processor}
}

// Capture submits the capture and reports the amount actually charged and the
// payer's email. A declined payment is ErrPaymentDeclined; an unreachable
// processor is ErrExternalPaymentAPI without the declined marker, so callers
// can tell "card refused" from "try again".
func (u *CaptureUseCase) Capture(ctx context.Context, transactionID, idempotencyKey string) (entities.CaptureResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	res := entities.CaptureResult{PaymentID: transactionID, State: entities.CaptureStateInitialized}

	if transactionID == "" {
		log.Printf("[capture][usecase] no transaction id available")
		return res, fmt.Errorf("%w: no transaction id available", ErrInvalidArgument)
	}
	if idempotencyKey == "" {
		return res, fmt.Errorf("%w: idempotency key is required", ErrInvalidArgument)
	}

	res.State = entities.CaptureStateSubmitted
	log.Printf("[capture][usecase] submitted processor=%s transaction_id=%s", u.processor.Name(), transactionID)

	pc, err := u.processor.CaptureTransaction(ctx, transactionID, idempotencyKey)
	if err != nil {
		res.State = entities.CaptureStateFailed
		log.Printf("[capture][usecase] capture failed transaction_id=%s err=%v", transactionID, err)
		if errors.Is(err, interfaces.ErrProcessorDeclined) {
			return res, fmt.Errorf("%w: %w", ErrPaymentDeclined, err)
		}
		return res, wrapProcessorError(err)
	}

	res.CaptureID = pc.CaptureID
	res.PayerEmail = pc.PayerEmail
	if !pc.Succeeded {
		res.State = entities.CaptureStateFailed
		log.Printf("[capture][usecase] capture not completed transaction_id=%s status=%s", transactionID, pc.Status)
		return res, fmt.Errorf("%w: processor status %s", ErrPaymentDeclined, pc.Status)
	}

	res.State = entities.CaptureStateCaptured
	res.Amount = entities.FromMinorUnits(pc.AmountMinor)
	log.Printf("[capture][usecase] captured transaction_id=%s capture_id=%s amount=%.2f", transactionID, pc.CaptureID, res.Amount)
	return res, nil
}
