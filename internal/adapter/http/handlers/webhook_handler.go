package handlers

import (
	"log"
	"net/http"

	response "event_registration/internal/adapter/http/dto/response"
	"event_registration/internal/usecase"
	"event_registration/internal/usecase/interfaces"
	"event_registration/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler routes processor notifications to the reconciler with the
// adapter registered for the :provider path segment.
type WebhookHandler struct {
	usecase  usecase.IWebhookUseCase
	adapters map[string]interfaces.IWebhookAdapter
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, adapters ...interfaces.IWebhookAdapter) *WebhookHandler {
	byProvider := make(map[string]interfaces.IWebhookAdapter, len(adapters))
	for _, a := range adapters {
		byProvider[a.Provider()] = a
	}
	return &WebhookHandler{usecase: uc, adapters: byProvider}
}

func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := c.Param("provider")
	adapter, ok := h.adapters[provider]
	if !ok {
		log.Printf("[webhook][handler] no adapter configured provider=%s", provider)
		writeError(c, pkg.NewDomainErrorSimple("WEBHOOK_PROVIDER_NOT_FOUND", "Webhook provider not configured", http.StatusNotFound))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	outcome, err := h.usecase.Handle(c.Request.Context(), adapter, c.Request.Header, body)
	if err != nil {
		log.Printf("[webhook][handler] handle failed provider=%s err=%v", provider, err)
		writeError(c, mapUseCaseError(err, ""))
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome))
}
