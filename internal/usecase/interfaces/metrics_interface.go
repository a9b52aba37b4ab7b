package interfaces

import "context"

const (
	MetricWebhookIgnored          = "WebhookIgnored"
	MetricWebhookMatched          = "WebhookMatched"
	MetricWebhookUnmatched        = "WebhookUnmatched"
	MetricWebhookSignatureInvalid = "WebhookSignatureInvalid"
)

// IMetrics records counters. Implementations must not fail the caller.
type IMetrics interface {
	Increment(ctx context.Context, metric string, dimensions map[string]string)
}
