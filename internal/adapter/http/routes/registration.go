package routes

import (
	"net/http"

	"event_registration/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.PUT("/:order_id", h.UpdateOrder)
		orders.GET("/:order_id", h.GetOrder)
		orders.POST("/:order_id/finalize", h.FinalizeOrder)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/intents", h.CreateIntent)
		payments.POST("/:transaction_id/capture", h.Capture)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/:provider", h.Receive)
}

// Internal routes serve platform triggers (audit log push). Their handlers
// authenticate the pushing identity themselves.
func addInternalRoutes(rg *gin.RouterGroup, h *handlers.SecretAuditHandler) {
	internal := rg.Group(PathInternal)
	{
		internal.POST("/secret-versions/audit", h.ReceiveAuditEvent)
	}
}
