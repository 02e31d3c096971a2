package kernel

import (
	"fmt"

	"console/internal/pkg/errs"
)

// Money is a value object for a non-negative monetary amount. The model is
// currency-agnostic; the console renders amounts as VND, which has no minor
// units, so the amount is a whole number.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Returns an error for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyBy returns the amount scaled by a quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return Money{amount: m.amount * int64(quantity)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount followed by the display currency.
func (m Money) String() string {
	return fmt.Sprintf("%d VND", m.amount)
}
