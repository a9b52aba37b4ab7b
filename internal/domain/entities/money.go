package entities

import "github.com/shopspring/decimal"

// ToMinorUnits converts a decimal currency amount to integer cents, rounding
// half away from zero so 0.1+0.2 style float noise never drifts a cent.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

func FromMinorUnits(minor int64) float64 {
	return decimal.New(minor, -2).InexactFloat64()
}

// FormatAmount renders an amount with exactly two decimals ("220.00").
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Round(2).InexactFloat64(), nil
}

func SumAmounts(values ...float64) float64 {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Round(2).InexactFloat64()
}

// AmountsEqual compares two amounts to the cent.
func AmountsEqual(a, b float64) bool {
	return ToMinorUnits(a) == ToMinorUnits(b)
}
