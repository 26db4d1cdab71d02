package kernel

import (
	"fmt"

	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney")

// Money is an immutable value object representing a non-negative monetary
// amount. It is backed by an arbitrary-precision decimal so fee computations
// stay exact and a persisted order's receipt can be re-derived without
// floating point drift.
//
// Arithmetic operations return new Money values and never mutate the
// receiver. Amounts are kept unrounded internally; callers round explicitly
// at fee boundaries via Round2.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromFloat(650)
//	fee := price.MulRate(decimal.NewFromFloat(0.05)).Round2()
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// Returns an error if the amount is negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a valid Money value of zero.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of the receiver and other.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the receiver multiplied by a whole-number quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulRate returns the receiver multiplied by a fractional rate (e.g. 0.05
// for a 5% fee). The result is unrounded; round explicitly at fee
// boundaries.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{
		amount: m.amount.Mul(rate),
		guard:  guard.NewConstructorGuard(),
	}
}

// Round2 returns the receiver rounded half-up to two decimal places.
func (m Money) Round2() Money {
	return Money{
		amount: m.amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two Money values represent the same amount.
// Comparison is by numeric value, so 5.0 equals 5.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. Intended for display and JSON
// responses only, never for further arithmetic.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
