package entities

// WebhookEventCore is the processor-neutral part of a webhook notification.
//
// Relevant is true only for the processor's "payment completed" event type
// whose status is the terminal success status. Description is resolved only
// for relevant events.
type WebhookEventCore struct {
	EventID       string
	EventType     string
	TransactionID string
	Status        string
	Description   string
	Relevant      bool
}

type WebhookOutcome string

const (
	WebhookOutcomeIgnored   WebhookOutcome = "ignored"
	WebhookOutcomeMatched   WebhookOutcome = "matched"
	WebhookOutcomeUnmatched WebhookOutcome = "unmatched"
)

// MailMessage is an operator notification.
type MailMessage struct {
	To      []string
	Subject string
	Body    string
}
