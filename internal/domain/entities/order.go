package entities

import (
	"strings"
	"time"
)

// OrderStatus is the lifecycle of a registration order.
//
// pending -> final is the only transition; final is terminal.

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusFinal   OrderStatus = "final"
)

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodCheck  PaymentMethod = "check"
)

// CheckTransactionID is recorded as the transaction id of orders paid offline.
const CheckTransactionID = "check"

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodPaypal, PaymentMethodCheck:
		return true
	}
	return false
}

// Person is one registrant. Extra carries event-specific form fields.
type Person struct {
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Admission float64                `json:"admission"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Order is a registration order persisted in the order store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (payment_id-index): payment_id
//
// Monetary representation:
//   - amounts are decimal currency units; Total must equal the sum of
//     admissions, donation and fees to the cent.
//   - Charged is what the processor actually captured and is set on finalize.
type Order struct {
	ID            string        `json:"id"`
	People        []Person      `json:"people"`
	Donation      float64       `json:"donation"`
	Deposit       float64       `json:"deposit"`
	Fees          float64       `json:"fees"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentID     string        `json:"payment_id,omitempty"`
	Charged       float64       `json:"charged"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	FinalizedAt   *time.Time    `json:"finalized_at,omitempty"`
}

// ExpectedTotal is the sum the order's Total must match.
func (o Order) ExpectedTotal() float64 {
	parts := make([]float64, 0, len(o.People)+2)
	for _, p := range o.People {
		parts = append(parts, p.Admission)
	}
	parts = append(parts, o.Donation, o.Fees)
	return SumAmounts(parts...)
}

// Purchaser is the first registrant; its email receives the receipt.
func (o Order) Purchaser() Person {
	if len(o.People) == 0 {
		return Person{}
	}
	return o.People[0]
}

func (o Order) IsFinal() bool {
	return o.Status == OrderStatusFinal
}
