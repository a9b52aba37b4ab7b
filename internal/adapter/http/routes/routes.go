package routes

import (
	"context"
	"log"

	_ "event_registration/docs"
	"event_registration/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
	PathInternal = "/internal"
)

// Setup builds every dependency from cfg and returns the router together with
// a cleanup func that closes long-lived clients.
func Setup(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, deps.orderHandler)
	addPaymentRoutes(v1, deps.paymentHandler)
	addWebhookRoutes(v1, deps.webhookHandler)
	if deps.secretAuditHandler != nil {
		addInternalRoutes(v1, deps.secretAuditHandler)
	}

	return router, deps.close, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
