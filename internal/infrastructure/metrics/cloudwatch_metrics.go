package metrics

import (
	"context"
	"log"
	"sort"
	"time"

	"event_registration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// CloudWatchAPI is the subset of the CloudWatch client used here.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

var _ CloudWatchAPI = (*cloudwatch.Client)(nil)

// CloudWatchMetrics publishes one count datapoint per Increment. Failures are
// logged and swallowed.
type CloudWatchMetrics struct {
	cw        CloudWatchAPI
	namespace string
	now       func() time.Time
}

var _ interfaces.IMetrics = (*CloudWatchMetrics)(nil)

func NewCloudWatchMetrics(cw CloudWatchAPI, namespace string) *CloudWatchMetrics {
	if namespace == "" {
		namespace = "EventRegistration"
	}
	return &CloudWatchMetrics{cw: cw, namespace: namespace, now: time.Now}
}

func (m *CloudWatchMetrics) Increment(ctx context.Context, metric string, dimensions map[string]string) {
	keys := make([]string, 0, len(dimensions))
	for k := range dimensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	dims := make([]cwtypes.Dimension, 0, len(keys))
	for _, k := range keys {
		dims = append(dims, cwtypes.Dimension{Name: aws.String(k), Value: aws.String(dimensions[k])})
	}

	_, err := m.cw.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []cwtypes.MetricDatum{{
			MetricName: aws.String(metric),
			Dimensions: dims,
			Timestamp:  aws.Time(m.now()),
			Unit:       cwtypes.StandardUnitCount,
			Value:      aws.Float64(1),
		}},
	})
	if err != nil {
		log.Printf("[metrics][gateway] put metric failed metric=%s err=%v", metric, err)
	}
}

// NopMetrics discards counters.
type NopMetrics struct{}

var _ interfaces.IMetrics = NopMetrics{}

func (NopMetrics) Increment(context.Context, string, map[string]string) {}
