package response

import (
	"time"

	"event_registration/internal/domain/entities"
)

type SaveOrderResponse struct {
	ID string `json:"id"`
}

type OrderResponse struct {
	ID            string            `json:"id"`
	People        []entities.Person `json:"people"`
	Donation      float64           `json:"donation"`
	Deposit       float64           `json:"deposit"`
	Fees          float64           `json:"fees"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	PaymentID     string            `json:"payment_id,omitempty"`
	Charged       float64           `json:"charged"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	FinalizedAt   *time.Time        `json:"finalized_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		People:        o.People,
		Donation:      o.Donation,
		Deposit:       o.Deposit,
		Fees:          o.Fees,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		PaymentID:     o.PaymentID,
		Charged:       o.Charged,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		FinalizedAt:   o.FinalizedAt,
	}
}
