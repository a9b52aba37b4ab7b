package usecase

import "errors"

// Error kinds surfaced to callers. Wrap them with fmt.Errorf("%w: ...") and
// test with errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrExternalPaymentAPI = errors.New("external payment api error")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPaymentRejected    = errors.New("payment request rejected")
	ErrDatabaseRead       = errors.New("database read error")
	ErrDatabaseSave       = errors.New("database save error")
	ErrExternalAPI        = errors.New("external api error")
	ErrSignatureInvalid   = errors.New("signature invalid")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyFinalized = errors.New("order already finalized")
)
