package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a small in-memory table keyed by "id" that understands the
// condition and update expressions used by OrderDynamoRepository.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	failWith error

	puts, gets, updates, queries int
	lastQuery                    *dynamodb.QueryInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func strAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func copyItem(in map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.failWith != nil {
		return nil, f.failWith
	}
	id := strAttr(in.Item, "id")
	if id == "" {
		return nil, errors.New("missing key id")
	}
	existing, exists := f.items[id]
	if cond := aws.ToString(in.ConditionExpression); cond != "" && exists {
		allowed := strings.Contains(cond, "#status = :pending") &&
			strAttr(existing, "status") == in.ExpressionAttributeValues[":pending"].(*types.AttributeValueMemberS).Value
		if !allowed {
			return nil, conditionFailed()
		}
	}
	f.items[id] = copyItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.failWith != nil {
		return nil, f.failWith
	}
	item, ok := f.items[strAttr(in.Key, "id")]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.failWith != nil {
		return nil, f.failWith
	}
	id := strAttr(in.Key, "id")
	item, ok := f.items[id]
	vals := in.ExpressionAttributeValues
	if !ok || strAttr(item, "status") != vals[":pending"].(*types.AttributeValueMemberS).Value {
		return nil, conditionFailed()
	}
	item = copyItem(item)
	item["status"] = vals[":final"]
	item["payment_id"] = vals[":pid"]
	item["charged"] = vals[":charged"]
	item["finalized_at"] = vals[":now"]
	item["updated_at"] = vals[":now"]
	f.items[id] = item
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	f.lastQuery = in
	if f.failWith != nil {
		return nil, f.failWith
	}
	pid := in.ExpressionAttributeValues[":pid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if strAttr(item, "payment_id") == pid {
			out = append(out, copyItem(item))
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}
