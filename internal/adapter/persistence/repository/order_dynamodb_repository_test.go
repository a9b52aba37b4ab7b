package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"event_registration/internal/domain/entities"
	"event_registration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func draftOrder() entities.Order {
	now := time.Date(2026, 4, 2, 15, 4, 5, 0, time.UTC)
	return entities.Order{
		People: []entities.Person{
			{FirstName: "Ana", LastName: "Lee", Email: "ana@example.org", Admission: 120, Extra: map[string]interface{}{"dietary": "vegan"}},
			{FirstName: "Bo", LastName: "Lee", Admission: 80},
		},
		Donation:      10,
		Fees:          5.5,
		Total:         215.5,
		PaymentMethod: entities.PaymentMethodStripe,
		Status:        entities.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderDynamoRepository_SaveAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewOrderDynamoRepository(ddb, "", "")
	ctx := context.Background()

	id, err := repo.Save(ctx, "", draftOrder())
	if err != nil || id == "" {
		t.Fatalf("expected generated id, got %q err=%v", id, err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != id || len(got.People) != 2 || got.Total != 215.5 || got.Status != entities.OrderStatusPending {
		t.Fatalf("unexpected order %+v", got)
	}
	if got.People[0].Extra["dietary"] != "vegan" || !got.CreatedAt.Equal(draftOrder().CreatedAt) {
		t.Fatalf("fields lost in round trip: %+v", got)
	}
	if _, ok := ddb.items[id]["payment_id"]; ok {
		t.Fatalf("empty payment_id must not be written")
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero order, got %+v err=%v", missing, err)
	}
}

func TestOrderDynamoRepository_Overwrite(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewOrderDynamoRepository(ddb, "orders", "payment_id-index")
	ctx := context.Background()
	id, _ := repo.Save(ctx, "", draftOrder())

	o := draftOrder()
	o.PaymentID = "pi_1"
	if got, err := repo.Save(ctx, id, o); err != nil || got != id {
		t.Fatalf("overwrite pending: id=%q err=%v", got, err)
	}
	stored, _ := repo.GetByID(ctx, id)
	if stored.PaymentID != "pi_1" {
		t.Fatalf("expected overwrite to replace the order, got %+v", stored)
	}

	if _, _, err := repo.MarkFinal(ctx, id, "pi_1", 215.5); err != nil {
		t.Fatalf("mark final: %v", err)
	}
	if _, err := repo.Save(ctx, id, o); !errors.Is(err, interfaces.ErrOrderNotPending) {
		t.Fatalf("expected ErrOrderNotPending, got %v", err)
	}

	if got, err := repo.Save(ctx, "client-chosen", o); err != nil || got != "client-chosen" {
		t.Fatalf("save under new explicit id: %q err=%v", got, err)
	}
}

func TestOrderDynamoRepository_GetByTransactionID(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewOrderDynamoRepository(ddb, "orders", "custom-index")
	ctx := context.Background()
	o := draftOrder()
	o.PaymentID = "pi_9"
	id, _ := repo.Save(ctx, "", o)

	got, err := repo.GetByTransactionID(ctx, "pi_9")
	if err != nil || got.ID != id {
		t.Fatalf("expected %s, got %+v err=%v", id, got, err)
	}
	if aws.ToString(ddb.lastQuery.IndexName) != "custom-index" {
		t.Fatalf("expected query on custom-index, got %s", aws.ToString(ddb.lastQuery.IndexName))
	}

	none, err := repo.GetByTransactionID(ctx, "pi_unknown")
	if err != nil || none.ID != "" {
		t.Fatalf("expected zero order, got %+v err=%v", none, err)
	}
}

func TestOrderDynamoRepository_MarkFinal(t *testing.T) {
	t.Run("transitions once", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewOrderDynamoRepository(ddb, "", "")
		fixed := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)
		repo.now = func() time.Time { return fixed }
		ctx := context.Background()
		id, _ := repo.Save(ctx, "", draftOrder())

		o, transitioned, err := repo.MarkFinal(ctx, id, "pi_1", 215.5)
		if err != nil || !transitioned {
			t.Fatalf("expected transition, got %v err=%v", transitioned, err)
		}
		if o.Status != entities.OrderStatusFinal || o.PaymentID != "pi_1" || o.Charged != 215.5 || o.FinalizedAt == nil || !o.FinalizedAt.Equal(fixed) {
			t.Fatalf("unexpected final order %+v", o)
		}

		again, transitioned, err := repo.MarkFinal(ctx, id, "pi_1", 215.5)
		if err != nil || transitioned {
			t.Fatalf("expected no second transition, got %v err=%v", transitioned, err)
		}
		if again.PaymentID != "pi_1" || again.Status != entities.OrderStatusFinal {
			t.Fatalf("expected stored final order, got %+v", again)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		repo := NewOrderDynamoRepository(newFakeDynamo(), "", "")
		o, transitioned, err := repo.MarkFinal(context.Background(), "nope", "pi_1", 1)
		if err != nil || transitioned || o.ID != "" {
			t.Fatalf("expected zero order, got %+v transitioned=%v err=%v", o, transitioned, err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.failWith = errors.New("ProvisionedThroughputExceededException")
		repo := NewOrderDynamoRepository(ddb, "", "")
		if _, _, err := repo.MarkFinal(context.Background(), "x", "pi_1", 1); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := repo.Save(context.Background(), "", draftOrder()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestIsConditionalCheckFailed(t *testing.T) {
	if !isConditionalCheckFailed(conditionFailed()) {
		t.Fatalf("expected typed exception to match")
	}
	if isConditionalCheckFailed(errors.New("ConditionalCheckFailedException")) {
		t.Fatalf("plain error must not match")
	}
}
