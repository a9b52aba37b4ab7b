package request

import (
	"strings"

	"event_registration/internal/domain/entities"
)

type PersonRequest struct {
	FirstName string                 `json:"first_name" validate:"required"`
	LastName  string                 `json:"last_name"`
	Email     string                 `json:"email" validate:"omitempty,email"`
	Phone     string                 `json:"phone"`
	Admission float64                `json:"admission" validate:"gte=0"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// OrderRequest is the draft order payload for POST /orders and PUT /orders/:order_id.
// Total must equal admissions + donation + fees to the cent.
type OrderRequest struct {
	People        []PersonRequest `json:"people" validate:"required,min=1,dive"`
	Donation      float64         `json:"donation" validate:"gte=0"`
	Deposit       float64         `json:"deposit" validate:"gte=0"`
	Fees          float64         `json:"fees" validate:"gte=0"`
	Total         float64         `json:"total" validate:"gte=0"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=stripe paypal check"`
	PaymentID     string          `json:"payment_id"`
}

func (r OrderRequest) ToEntity() entities.Order {
	people := make([]entities.Person, 0, len(r.People))
	for _, p := range r.People {
		people = append(people, entities.Person{
			FirstName: strings.TrimSpace(p.FirstName),
			LastName:  strings.TrimSpace(p.LastName),
			Email:     strings.TrimSpace(p.Email),
			Phone:     strings.TrimSpace(p.Phone),
			Admission: p.Admission,
			Extra:     p.Extra,
		})
	}
	return entities.Order{
		People:        people,
		Donation:      r.Donation,
		Deposit:       r.Deposit,
		Fees:          r.Fees,
		Total:         r.Total,
		PaymentMethod: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		PaymentID:     strings.TrimSpace(r.PaymentID),
	}
}

// FinalizeRequest finalizes an order. A transaction_id of "check" marks an
// offline payment and ignores amount.
type FinalizeRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required"`
	Amount        float64 `json:"amount"`
}

func (r FinalizeRequest) IsCheck() bool {
	return strings.EqualFold(strings.TrimSpace(r.TransactionID), entities.CheckTransactionID)
}
