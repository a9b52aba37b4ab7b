package repository

import (
	"context"
	"fmt"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultOrdersTableName = "orders"
	DefaultPaymentIDIndex  = "payment_id-index"
)

type personItem struct {
	FirstName string                 `dynamodbav:"first_name"`
	LastName  string                 `dynamodbav:"last_name"`
	Email     string                 `dynamodbav:"email,omitempty"`
	Phone     string                 `dynamodbav:"phone,omitempty"`
	Admission float64                `dynamodbav:"admission"`
	Extra     map[string]interface{} `dynamodbav:"extra,omitempty"`
}

// payment_id is omitted while empty: GSI key attributes cannot be empty strings.
type orderItem struct {
	ID            string       `dynamodbav:"id"`
	People        []personItem `dynamodbav:"people"`
	Donation      float64      `dynamodbav:"donation"`
	Deposit       float64      `dynamodbav:"deposit"`
	Fees          float64      `dynamodbav:"fees"`
	Total         float64      `dynamodbav:"total"`
	PaymentMethod string       `dynamodbav:"payment_method,omitempty"`
	PaymentID     string       `dynamodbav:"payment_id,omitempty"`
	Charged       float64      `dynamodbav:"charged"`
	Status        string       `dynamodbav:"status"`
	CreatedAt     string       `dynamodbav:"created_at"`
	UpdatedAt     string       `dynamodbav:"updated_at"`
	FinalizedAt   string       `dynamodbav:"finalized_at,omitempty"`
}

// OrderDynamoRepository persists registration orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)

type OrderDynamoRepository struct {
	ddb            DynamoDBAPI
	tableName      string
	paymentIDIndex string
	now            func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName, paymentIDIndex string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrdersTableName
	}
	if paymentIDIndex == "" {
		paymentIDIndex = DefaultPaymentIDIndex
	}
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      tableName,
		paymentIDIndex: paymentIDIndex,
		now:            time.Now,
	}
}

// Save creates the order under a new id when id is empty. Otherwise it
// replaces the stored order, but only while that order is still pending.
func (r *OrderDynamoRepository) Save(ctx context.Context, id string, o entities.Order) (string, error) {
	create := id == ""
	if create {
		id = uuid.NewString()
	}
	o.ID = id
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return "", err
	}

	in := &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if create {
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
	} else {
		in.ConditionExpression = aws.String("attribute_not_exists(#id) OR #status = :pending")
		in.ExpressionAttributeNames["#status"] = "status"
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		if !create && isConditionalCheckFailed(err) {
			return "", interfaces.ErrOrderNotPending
		}
		return "", err
	}
	return id, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// GetByTransactionID reads the GSI, which is eventually consistent: a freshly
// written order may not be visible yet.
func (r *OrderDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.paymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: transactionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) MarkFinal(ctx context.Context, id, transactionID string, amount float64) (entities.Order, bool, error) {
	charged, err := attributevalue.Marshal(amount)
	if err != nil {
		return entities.Order{}, false, err
	}
	now := formatTime(r.now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :final, payment_id = :pid, charged = :charged, finalized_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":final":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusFinal)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":pid":     &types.AttributeValueMemberS{Value: transactionID},
			":charged": charged,
			":now":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			current, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Order{}, false, fmt.Errorf("load order after failed transition: %w", gerr)
			}
			return current, false, nil
		}
		return entities.Order{}, false, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, false, err
	}
	return fromOrderItem(it), true, nil
}

func toOrderItem(o entities.Order) orderItem {
	people := make([]personItem, 0, len(o.People))
	for _, p := range o.People {
		people = append(people, personItem{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
			Admission: p.Admission,
			Extra:     p.Extra,
		})
	}
	it := orderItem{
		ID:            o.ID,
		People:        people,
		Donation:      o.Donation,
		Deposit:       o.Deposit,
		Fees:          o.Fees,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		PaymentID:     o.PaymentID,
		Charged:       o.Charged,
		Status:        string(o.Status),
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
	if o.FinalizedAt != nil {
		it.FinalizedAt = formatTime(*o.FinalizedAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	people := make([]entities.Person, 0, len(it.People))
	for _, p := range it.People {
		people = append(people, entities.Person{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
			Admission: p.Admission,
			Extra:     p.Extra,
		})
	}
	o := entities.Order{
		ID:            it.ID,
		People:        people,
		Donation:      it.Donation,
		Deposit:       it.Deposit,
		Fees:          it.Fees,
		Total:         it.Total,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaymentID:     it.PaymentID,
		Charged:       it.Charged,
		Status:        entities.OrderStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.FinalizedAt != "" {
		t := parseTime(it.FinalizedAt)
		o.FinalizedAt = &t
	}
	return o
}
