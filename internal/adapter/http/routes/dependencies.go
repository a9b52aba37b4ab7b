package routes

import (
	"context"
	"fmt"
	"log"

	request "event_registration/internal/adapter/http/dto/request"
	"event_registration/internal/adapter/http/handlers"
	"event_registration/internal/adapter/persistence/repository"
	"event_registration/internal/config"
	"event_registration/internal/infrastructure/database"
	"event_registration/internal/infrastructure/messaging"
	"event_registration/internal/infrastructure/metrics"
	"event_registration/internal/infrastructure/notification"
	"event_registration/internal/infrastructure/payments"
	"event_registration/internal/infrastructure/secrets"
	"event_registration/internal/infrastructure/webhooks"
	"event_registration/internal/usecase"
	"event_registration/internal/usecase/interfaces"
	"event_registration/pkg/retry"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"google.golang.org/api/option"
)

type dependencies struct {
	orderHandler       *handlers.OrderHandler
	paymentHandler     *handlers.PaymentHandler
	webhookHandler     *handlers.WebhookHandler
	secretAuditHandler *handlers.SecretAuditHandler

	closers []func() error
}

func (d *dependencies) close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			log.Printf("[setup] close failed err=%v", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg config.Config) (*dependencies, error) {
	deps := &dependencies{}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	orderRepo, err := newOrderRepository(ctx, cfg, awsCfg, deps)
	if err != nil {
		return nil, err
	}

	processor, paypalProcessor, err := newPaymentProcessor(cfg)
	if err != nil {
		return nil, err
	}

	var publisher interfaces.IOrderEventPublisher = messaging.NopPublisher{}
	if cfg.OrderEventsQueueURL != "" {
		publisher = messaging.NewSQSOrderEventPublisher(sqs.NewFromConfig(awsCfg), cfg.OrderEventsQueueURL)
	}
	var notifier interfaces.INotifier = notification.LogNotifier{}
	if cfg.NotifyFrom != "" {
		notifier = notification.NewSESNotifier(sesv2.NewFromConfig(awsCfg), cfg.NotifyFrom)
	}
	var counters interfaces.IMetrics = metrics.NopMetrics{}
	if cfg.MetricsNamespace != "" {
		counters = metrics.NewCloudWatchMetrics(cloudwatch.NewFromConfig(awsCfg), cfg.MetricsNamespace)
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, publisher)
	intentUseCase := usecase.NewPaymentIntentUseCase(processor, usecase.PaymentIntentDefaults{
		Currency:    cfg.Currency,
		Description: cfg.PaymentDescription,
	})
	captureUseCase := usecase.NewCaptureUseCase(processor)
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo, notifier, counters, usecase.WebhookConfig{
		ExpectedDescription: cfg.PaymentDescription,
		LookupRetry:         retry.Options{MaxAttempts: cfg.LookupMaxAttempts, BaseDelay: cfg.LookupBaseDelay},
		OperatorEmails:      cfg.NotifyTo,
	})

	deps.orderHandler = handlers.NewOrderHandler(orderUseCase, request.NewValidator(), cfg.TechContactEmail)
	deps.paymentHandler = handlers.NewPaymentHandler(intentUseCase, captureUseCase, cfg.TechContactEmail)
	deps.webhookHandler = handlers.NewWebhookHandler(webhookUseCase, newWebhookAdapters(cfg, paypalProcessor)...)

	if cfg.SecretPrunerEnabled {
		var opts []option.ClientOption
		if cfg.GCPCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.GCPCredentialsFile))
		}
		store, err := secrets.NewGCPSecretVersionStore(ctx, opts...)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, store.Close)
		auth, err := secrets.NewOIDCPushAuthenticator(ctx, cfg.AuditPushAudience, cfg.AuditPushServiceAccount)
		if err != nil {
			return nil, err
		}
		deps.secretAuditHandler = handlers.NewSecretAuditHandler(usecase.NewSecretPrunerUseCase(store), auth)
	}

	return deps, nil
}

func newOrderRepository(ctx context.Context, cfg config.Config, awsCfg aws.Config, deps *dependencies) (interfaces.IOrderRepository, error) {
	switch cfg.OrderStore {
	case config.StoreFirestore:
		client, err := database.NewFirestoreClient(ctx, cfg.GCPProjectID, cfg.GCPCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("firestore client: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)
		log.Printf("[setup] order store firestore collection=%s", cfg.FirestoreCollection)
		return repository.NewOrderFirestoreRepository(client, cfg.FirestoreCollection), nil
	case config.StoreDynamoDB, "":
		ddb := database.NewDynamoDBClient(awsCfg, cfg.DynamoDBEndpoint)
		log.Printf("[setup] order store dynamodb table=%s", cfg.OrdersTable)
		return repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable, cfg.PaymentIDIndex), nil
	default:
		return nil, fmt.Errorf("unknown ORDER_STORE %q", cfg.OrderStore)
	}
}

// newPaymentProcessor also returns the PayPal processor, when one exists, so
// the PayPal webhook adapter can share its authenticated client.
func newPaymentProcessor(cfg config.Config) (interfaces.IPaymentProcessor, *payments.PaypalProcessor, error) {
	var paypalProcessor *payments.PaypalProcessor
	if cfg.PaypalClientID != "" && cfg.PaypalClientSecret != "" {
		p, err := payments.NewPaypalProcessor(cfg.PaypalClientID, cfg.PaypalClientSecret, cfg.PaypalAPIBase)
		if err != nil {
			return nil, nil, err
		}
		paypalProcessor = p
	}

	if cfg.ProcessorMock {
		return payments.NewMockProcessor(cfg.Processor), paypalProcessor, nil
	}

	switch cfg.Processor {
	case config.ProcessorStripe:
		p, err := payments.NewStripeProcessor(cfg.StripeSecretKey, nil)
		if err != nil {
			return nil, nil, err
		}
		return p, paypalProcessor, nil
	case config.ProcessorPaypal:
		if paypalProcessor == nil {
			return nil, nil, payments.ErrMissingPaypalCredentials
		}
		return paypalProcessor, paypalProcessor, nil
	default:
		return nil, nil, fmt.Errorf("unknown PAYMENT_PROCESSOR %q", cfg.Processor)
	}
}

// newWebhookAdapters registers an adapter for every processor whose webhook
// secret is configured.
func newWebhookAdapters(cfg config.Config, paypalProcessor *payments.PaypalProcessor) []interfaces.IWebhookAdapter {
	var adapters []interfaces.IWebhookAdapter
	if cfg.StripeWebhookSecret != "" {
		a, err := webhooks.NewStripeAdapter(cfg.StripeWebhookSecret)
		if err != nil {
			log.Printf("[setup] stripe webhook not configured: %v", err)
		} else {
			adapters = append(adapters, a)
		}
	}
	if cfg.PaypalWebhookID != "" && paypalProcessor != nil {
		a, err := webhooks.NewPaypalAdapter(paypalProcessor.Client(), paypalProcessor, cfg.PaypalWebhookID)
		if err != nil {
			log.Printf("[setup] paypal webhook not configured: %v", err)
		} else {
			adapters = append(adapters, a)
		}
	}
	return adapters
}
