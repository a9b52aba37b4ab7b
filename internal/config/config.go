package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB  = "dynamodb"
	StoreFirestore = "firestore"

	ProcessorStripe = "stripe"
	ProcessorPaypal = "paypal"
)

// Config is read once from the environment at startup and injected downward.
type Config struct {
	Port     string
	RunLocal bool

	AWSRegion        string
	DynamoDBEndpoint string
	OrdersTable      string
	PaymentIDIndex   string

	OrderStore          string
	GCPProjectID        string
	GCPCredentialsFile  string
	FirestoreCollection string

	Processor          string
	ProcessorMock      bool
	Currency           string
	PaymentDescription string

	StripeSecretKey     string
	StripeWebhookSecret string

	PaypalClientID     string
	PaypalClientSecret string
	PaypalAPIBase      string
	PaypalWebhookID    string

	LookupMaxAttempts int
	LookupBaseDelay   time.Duration

	NotifyFrom       string
	NotifyTo         []string
	TechContactEmail string

	OrderEventsQueueURL string
	MetricsNamespace    string

	SecretPrunerEnabled     bool
	AuditPushAudience       string
	AuditPushServiceAccount string
}

func Load() Config {
	return Config{
		Port:     getenvDefault("PORT", "8080"),
		RunLocal: getenvBool("RUN_LOCAL"),

		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		OrdersTable:      getenvDefault("ORDERS_TABLE", "orders"),
		PaymentIDIndex:   getenvDefault("ORDERS_PAYMENT_ID_INDEX", "payment_id-index"),

		OrderStore:          strings.ToLower(getenvDefault("ORDER_STORE", StoreDynamoDB)),
		GCPProjectID:        os.Getenv("GCP_PROJECT_ID"),
		GCPCredentialsFile:  os.Getenv("GCP_CREDENTIALS_FILE"),
		FirestoreCollection: getenvDefault("FIRESTORE_COLLECTION", "orders"),

		Processor:          strings.ToLower(getenvDefault("PAYMENT_PROCESSOR", ProcessorStripe)),
		ProcessorMock:      getenvBool("PAYMENT_GATEWAY_MOCK"),
		Currency:           strings.ToUpper(getenvDefault("PAYMENT_CURRENCY", "USD")),
		PaymentDescription: getenvDefault("PAYMENT_DESCRIPTION", "Event Registration"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		PaypalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PaypalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PaypalAPIBase:      getenvDefault("PAYPAL_API_BASE", "https://api-m.sandbox.paypal.com"),
		PaypalWebhookID:    os.Getenv("PAYPAL_WEBHOOK_ID"),

		LookupMaxAttempts: getenvInt("WEBHOOK_LOOKUP_MAX_ATTEMPTS", 5),
		LookupBaseDelay:   time.Duration(getenvInt("WEBHOOK_LOOKUP_BASE_DELAY_MS", 500)) * time.Millisecond,

		NotifyFrom:       os.Getenv("NOTIFY_FROM"),
		NotifyTo:         splitList(os.Getenv("NOTIFY_TO")),
		TechContactEmail: os.Getenv("TECH_CONTACT_EMAIL"),

		OrderEventsQueueURL: os.Getenv("ORDER_EVENTS_QUEUE_URL"),
		MetricsNamespace:    os.Getenv("METRICS_NAMESPACE"),

		SecretPrunerEnabled:     getenvBool("SECRET_PRUNER_ENABLED"),
		AuditPushAudience:       os.Getenv("AUDIT_PUSH_AUDIENCE"),
		AuditPushServiceAccount: os.Getenv("AUDIT_PUSH_SERVICE_ACCOUNT"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
