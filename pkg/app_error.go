package pkg

import "fmt"

// AppError is the error shape returned by the HTTP layer.
//
// Code is one of the stable error kinds (INVALID_ARGUMENT, EXTERNAL_PAYMENT_API,
// DATABASE_READ, DATABASE_SAVE, EXTERNAL_API, SIGNATURE_INVALID, ...) so clients
// can decide whether a retry is safe without parsing messages.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Retryable  bool
	Contact    string
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	Retryable bool   `json:"retryable"`
	Contact   string `json:"contact,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithRetryable marks whether the caller may repeat the request unchanged.
func (e *AppError) WithRetryable(retryable bool) *AppError {
	e.Retryable = retryable
	return e
}

// WithContact attaches the technical contact shown next to payment errors.
func (e *AppError) WithContact(email string) *AppError {
	e.Contact = email
	return e
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{
		Code:      e.Code,
		Message:   e.Message,
		Retryable: e.Retryable,
		Contact:   e.Contact,
	}
	if e.Err != nil {
		out.Detail = e.Err.Error()
	}
	return out
}
