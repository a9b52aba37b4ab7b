package handlers

import (
	"errors"
	"net/http"

	"event_registration/internal/usecase"
	"event_registration/pkg"

	"github.com/gin-gonic/gin"
)

// mapUseCaseError translates use case errors into API errors. Payment and
// save failures carry the technical contact so the registrant can reach a
// human with the detail shown.
func mapUseCaseError(err error, contact string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_ARGUMENT", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyFinalized):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_FINALIZED", "Order already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureInvalid):
		return pkg.NewDomainErrorSimple("SIGNATURE_INVALID", "Invalid webhook signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was declined", err, http.StatusPaymentRequired).
			WithContact(contact)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainError("PAYMENT_REJECTED", "Payment processor rejected the request", err, http.StatusUnprocessableEntity).
			WithContact(contact)
	case errors.Is(err, usecase.ErrExternalPaymentAPI):
		return pkg.NewDomainError("EXTERNAL_PAYMENT_API", "Payment processor error", err, http.StatusBadGateway).
			WithRetryable(true).WithContact(contact)
	case errors.Is(err, usecase.ErrDatabaseSave):
		return pkg.NewDomainError("DATABASE_SAVE", "Could not save order", err, http.StatusServiceUnavailable).
			WithRetryable(true).WithContact(contact)
	case errors.Is(err, usecase.ErrDatabaseRead):
		return pkg.NewDomainError("DATABASE_READ", "Could not read order", err, http.StatusServiceUnavailable).
			WithRetryable(true)
	case errors.Is(err, usecase.ErrExternalAPI):
		return pkg.NewDomainError("EXTERNAL_API", "Upstream service error", err, http.StatusBadGateway).
			WithRetryable(true)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
