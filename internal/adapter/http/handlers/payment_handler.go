package handlers

import (
	"log"
	"net/http"
	"strings"

	request "event_registration/internal/adapter/http/dto/request"
	"event_registration/internal/usecase"
	"event_registration/pkg"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the attempt key. Clients rotate it after every
// terminal response.
const IdempotencyKeyHeader = "Idempotency-Key"

type PaymentHandler struct {
	intents  usecase.IPaymentIntentUseCase
	captures usecase.ICaptureUseCase
	contact  string
}

func NewPaymentHandler(intents usecase.IPaymentIntentUseCase, captures usecase.ICaptureUseCase, contact string) *PaymentHandler {
	return &PaymentHandler{intents: intents, captures: captures, contact: contact}
}

// attemptKey returns the client's key, or issues one for clients that do not
// manage keys themselves. The key is echoed so the client can reuse it.
func attemptKey(c *gin.Context) string {
	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	if key == "" {
		key = usecase.NewIdempotencyKeyManager().Issue()
	}
	c.Header(IdempotencyKeyHeader, key)
	return key
}

// CreateIntent creates the processor transaction for a checkout, or resizes
// the existing one when payment_id is given.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var payload request.PaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}
	key := attemptKey(c)

	intent, err := h.intents.Reconcile(c.Request.Context(), usecase.ReconcileInput{
		ExistingID:     strings.TrimSpace(payload.PaymentID),
		Amount:         payload.Amount,
		Currency:       payload.Currency,
		IdempotencyKey: key,
		Customer:       payload.Customer(),
	})
	if err != nil {
		log.Printf("[payment][handler] reconcile failed payment_id=%s key=%s err=%v", payload.PaymentID, key, err)
		writeError(c, mapUseCaseError(err, h.contact))
		return
	}
	c.JSON(http.StatusOK, intent)
}

func (h *PaymentHandler) Capture(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	key := attemptKey(c)

	res, err := h.captures.Capture(c.Request.Context(), transactionID, key)
	if err != nil {
		log.Printf("[capture][handler] capture failed transaction_id=%s key=%s err=%v", transactionID, key, err)
		writeError(c, mapUseCaseError(err, h.contact))
		return
	}
	c.JSON(http.StatusOK, res)
}
