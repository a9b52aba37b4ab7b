package request

import (
	"errors"
	"testing"

	validatorv10 "github.com/go-playground/validator/v10"
)

func TestOrderRequest_Valid(t *testing.T) {
	v := NewValidator()
	req := OrderRequest{
		People: []PersonRequest{
			{FirstName: "Ada", Email: "ada@example.com", Admission: 100.10},
			{FirstName: "Grace", Admission: 99.80},
		},
		Donation:      0.1,
		Fees:          0.2,
		Total:         200.20,
		PaymentMethod: "stripe",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestOrderRequest_TotalMismatch(t *testing.T) {
	v := NewValidator()
	req := OrderRequest{
		People: []PersonRequest{{FirstName: "Ada", Admission: 100}},
		Total:  99.99,
	}
	err := v.Struct(req)
	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if verrs[0].Tag() != "total_matches_items" {
		t.Fatalf("expected total_matches_items, got %s", verrs[0].Tag())
	}
}

func TestOrderRequest_FieldRules(t *testing.T) {
	v := NewValidator()

	if err := v.Struct(OrderRequest{}); err == nil {
		t.Fatal("expected error for missing people")
	}
	bad := OrderRequest{
		People:        []PersonRequest{{FirstName: "Ada", Email: "not-an-email", Admission: 10}},
		Total:         10,
		PaymentMethod: "bitcoin",
	}
	if err := v.Struct(bad); err == nil {
		t.Fatal("expected error for bad email and payment method")
	}
}

func TestOrderRequest_ToEntity(t *testing.T) {
	o := OrderRequest{
		People:        []PersonRequest{{FirstName: " Ada ", Email: " ada@example.com ", Admission: 50}},
		Total:         50,
		PaymentMethod: "PayPal",
		PaymentID:     " ORDER1 ",
	}.ToEntity()
	if o.People[0].FirstName != "Ada" || o.People[0].Email != "ada@example.com" {
		t.Fatalf("unexpected person: %+v", o.People[0])
	}
	if o.PaymentMethod != "paypal" || o.PaymentID != "ORDER1" {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestFinalizeRequest_IsCheck(t *testing.T) {
	if !(FinalizeRequest{TransactionID: " CHECK "}).IsCheck() {
		t.Fatal("expected check")
	}
	if (FinalizeRequest{TransactionID: "pi_1"}).IsCheck() {
		t.Fatal("expected processor transaction")
	}
}
