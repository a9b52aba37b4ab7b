package response

import "event_registration/internal/domain/entities"

type WebhookResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome"`
}

func FromWebhookOutcome(o entities.WebhookOutcome) WebhookResponse {
	return WebhookResponse{Received: true, Outcome: string(o)}
}
