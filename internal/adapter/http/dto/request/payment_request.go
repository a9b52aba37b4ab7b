package request

import (
	"strings"

	"event_registration/internal/domain/entities"
)

// PaymentIntentRequest asks for a processor transaction sized to amount.
// PaymentID is the transaction created by an earlier attempt, if any. The
// transaction description is server-configured and cannot be set here.
type PaymentIntentRequest struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
}

func (r PaymentIntentRequest) Customer() entities.Customer {
	return entities.Customer{Email: strings.TrimSpace(r.Email), Name: strings.TrimSpace(r.Name)}
}
