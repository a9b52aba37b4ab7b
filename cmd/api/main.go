package main

import (
	"context"
	"log"
	"os"

	"event_registration/internal/adapter/http/routes"
	"event_registration/internal/config"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Event Registration Payments API
// @version         1.0
// @description     Pending orders, payment intents, captures and processor webhooks for event registration.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx := context.Background()
	cfg := config.Load()

	router, cleanup, err := routes.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}
	defer cleanup()

	// outside Lambda (or RUN_LOCAL=true) serve plain HTTP for development.
	if cfg.RunLocal || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		addr := ":" + cfg.Port
		log.Printf("running local server on %s", addr)
		if err := router.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	adapter := ginadapter.New(router)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
