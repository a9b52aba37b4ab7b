package handlers

import (
	"log"
	"net/http"

	request "event_registration/internal/adapter/http/dto/request"
	response "event_registration/internal/adapter/http/dto/response"
	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase"
	"event_registration/pkg"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler serves draft orders and their finalization.

type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	validate *validatorv10.Validate
	contact  string
}

func NewOrderHandler(uc usecase.IOrderUseCase, validate *validatorv10.Validate, contact string) *OrderHandler {
	if validate == nil {
		validate = request.NewValidator()
	}
	return &OrderHandler{usecase: uc, validate: validate, contact: contact}
}

// CreateOrder saves a new pending order and returns its id.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	h.saveDraft(c, "")
}

// UpdateOrder overwrites a pending order in place.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	h.saveDraft(c, c.Param("order_id"))
}

func (h *OrderHandler) saveDraft(c *gin.Context, orderID string) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payload order_id=%q err=%v", orderID, err)
		writeError(c, errInvalidOrderPayload)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		log.Printf("[order][handler] validation failed order_id=%q err=%v", orderID, err)
		writeError(c, pkg.NewDomainError("INVALID_ORDER_INPUT", "Invalid order payload", err, http.StatusBadRequest))
		return
	}

	id, err := h.usecase.SaveDraft(c.Request.Context(), orderID, payload.ToEntity())
	if err != nil {
		log.Printf("[order][handler] save failed order_id=%q err=%v", orderID, err)
		writeError(c, mapUseCaseError(err, h.contact))
		return
	}

	status := http.StatusOK
	if orderID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.SaveOrderResponse{ID: id})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err, h.contact))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// FinalizeOrder records the captured amount and marks the order final.
func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	ctx := c.Request.Context()
	var o entities.Order
	var err error
	if payload.IsCheck() {
		o, err = h.usecase.FinalizeCheck(ctx, orderID)
	} else {
		o, err = h.usecase.Finalize(ctx, orderID, payload.TransactionID, payload.Amount)
	}
	if err != nil {
		log.Printf("[order][handler] finalize failed order_id=%s transaction_id=%s err=%v", orderID, payload.TransactionID, err)
		writeError(c, mapUseCaseError(err, h.contact))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}
