package entities

// Customer identifies the payer to the processor.
type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CreateTransactionRequest struct {
	AmountMinor    int64
	Currency       string
	Description    string
	IdempotencyKey string
	Customer       Customer
}

// ProcessorTransaction is a processor-side payment object (Stripe PaymentIntent,
// PayPal order) reduced to what this service needs.
type ProcessorTransaction struct {
	ID           string
	AmountMinor  int64
	Currency     string
	Status       string
	Description  string
	ClientSecret string
	ApprovalURL  string
}

// PaymentIntent is returned to clients after reconciling a transaction.
type PaymentIntent struct {
	ID           string  `json:"id"`
	Processor    string  `json:"processor"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	ClientSecret string  `json:"client_secret,omitempty"`
	ApprovalURL  string  `json:"approval_url,omitempty"`
}

// ProcessorCapture is the processor's answer to a capture request.
type ProcessorCapture struct {
	TransactionID string
	CaptureID     string
	AmountMinor   int64
	Status        string
	Succeeded     bool
	PayerEmail    string
}

// CaptureState tracks one capture attempt.
//
//	initialized -> submitted -> captured | failed
type CaptureState string

const (
	CaptureStateInitialized CaptureState = "initialized"
	CaptureStateSubmitted   CaptureState = "submitted"
	CaptureStateCaptured    CaptureState = "captured"
	CaptureStateFailed      CaptureState = "failed"
)

type CaptureResult struct {
	PaymentID  string       `json:"payment_id"`
	CaptureID  string       `json:"capture_id,omitempty"`
	Amount     float64      `json:"amount"`
	PayerEmail string       `json:"payer_email,omitempty"`
	State      CaptureState `json:"state"`
}
