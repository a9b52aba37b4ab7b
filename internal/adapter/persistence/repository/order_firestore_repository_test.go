package repository

import (
	"testing"
	"time"

	"event_registration/internal/domain/entities"
)

func TestOrderDocMapping(t *testing.T) {
	finalized := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)
	o := draftOrder()
	o.ID = "ord-1"
	o.PaymentID = "PAYPAL-ORDER-1"
	o.Status = entities.OrderStatusFinal
	o.Charged = 215.5
	o.FinalizedAt = &finalized

	doc := toOrderDoc(o)
	if doc.PaymentID != "PAYPAL-ORDER-1" || doc.Status != "final" || len(doc.People) != 2 || doc.People[0].Extra["dietary"] != "vegan" {
		t.Fatalf("unexpected doc %+v", doc)
	}

	back := fromOrderDoc("ord-1", doc)
	if back.ID != "ord-1" || back.Charged != 215.5 || !back.FinalizedAt.Equal(finalized) || back.People[1].FirstName != "Bo" {
		t.Fatalf("unexpected order %+v", back)
	}
	if !back.CreatedAt.Equal(o.CreatedAt) || back.PaymentMethod != entities.PaymentMethodStripe {
		t.Fatalf("fields lost in mapping: %+v", back)
	}
}

func TestNewOrderFirestoreRepository_Defaults(t *testing.T) {
	repo := NewOrderFirestoreRepository(nil, "")
	if repo.collection != DefaultOrdersCollection {
		t.Fatalf("expected default collection, got %s", repo.collection)
	}
}
