package request

import (
	"fmt"

	"event_registration/internal/domain/entities"

	validatorv10 "github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the order total rule registered.
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(orderTotalStructValidation, OrderRequest{})
	return v
}

func orderTotalStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(OrderRequest)

	parts := make([]float64, 0, len(req.People)+2)
	for _, p := range req.People {
		parts = append(parts, p.Admission)
	}
	parts = append(parts, req.Donation, req.Fees)
	sum := entities.SumAmounts(parts...)

	if !entities.AmountsEqual(sum, req.Total) {
		sl.ReportError(req.Total, "total", "Total", "total_matches_items", fmt.Sprintf("items sum %.2f != total %.2f", sum, req.Total))
	}
}
