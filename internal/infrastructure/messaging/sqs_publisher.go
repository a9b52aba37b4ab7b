package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const EventOrderFinalized = "order.finalized"

// SQSAPI is the subset of the SQS client used here.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

var _ SQSAPI = (*sqs.Client)(nil)

// SQSOrderEventPublisher sends order lifecycle events to a queue.
type SQSOrderEventPublisher struct {
	sqs      SQSAPI
	queueURL string
}

var _ interfaces.IOrderEventPublisher = (*SQSOrderEventPublisher)(nil)

func NewSQSOrderEventPublisher(client SQSAPI, queueURL string) *SQSOrderEventPublisher {
	return &SQSOrderEventPublisher{sqs: client, queueURL: queueURL}
}

type orderFinalizedMessage struct {
	Event         string    `json:"event"`
	OrderID       string    `json:"order_id"`
	PaymentID     string    `json:"payment_id"`
	PaymentMethod string    `json:"payment_method"`
	Charged       string    `json:"charged"`
	Total         string    `json:"total"`
	Email         string    `json:"email,omitempty"`
	People        int       `json:"people"`
	FinalizedAt   time.Time `json:"finalized_at"`
}

func (p *SQSOrderEventPublisher) PublishOrderFinalized(ctx context.Context, o entities.Order) error {
	msg := orderFinalizedMessage{
		Event:         EventOrderFinalized,
		OrderID:       o.ID,
		PaymentID:     o.PaymentID,
		PaymentMethod: string(o.PaymentMethod),
		Charged:       entities.FormatAmount(o.Charged),
		Total:         entities.FormatAmount(o.Total),
		Email:         o.Purchaser().Email,
		People:        len(o.People),
	}
	if o.FinalizedAt != nil {
		msg.FinalizedAt = o.FinalizedAt.UTC()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"event_type": {DataType: aws.String("String"), StringValue: aws.String(EventOrderFinalized)},
			"order_id":   {DataType: aws.String("String"), StringValue: aws.String(o.ID)},
		},
	}
	if _, err := p.sqs.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	log.Printf("[order][gateway] published %s order_id=%s", EventOrderFinalized, o.ID)
	return nil
}

// NopPublisher drops events. Used when ORDER_EVENTS_QUEUE_URL is not set.
type NopPublisher struct{}

var _ interfaces.IOrderEventPublisher = NopPublisher{}

func (NopPublisher) PublishOrderFinalized(context.Context, entities.Order) error { return nil }
