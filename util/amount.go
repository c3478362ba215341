package util

import (
	"fmt"
	"math"
	"strconv"
)

// AmountError describes a violation of the monetary invariants: an amount
// that is negative, exceeds MaxZatoshi, or an arithmetic operation that
// would overflow or go negative. Consensus constants and calculations are
// chosen so that these conditions never occur for valid inputs, so an
// AmountError indicates a constants or logic bug rather than a rule
// violation triggered by block data.
type AmountError struct {
	description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *AmountError) Error() string {
	return e.description
}

func amountErrorf(format string, args ...interface{}) *AmountError {
	return &AmountError{description: fmt.Sprintf(format, args...)}
}

// Amount represents a quantity of zatoshi. An Amount is always in the range
// [0, MaxZatoshi]; every operation that could leave that range fails with an
// *AmountError instead of wrapping or going negative.
type Amount int64

// NewAmount returns a new Amount for the given number of zatoshi. It fails
// if the value is negative or larger than MaxZatoshi.
func NewAmount(zatoshi int64) (Amount, error) {
	if zatoshi < 0 {
		return 0, amountErrorf("amount of %d zatoshi is negative", zatoshi)
	}
	if zatoshi > MaxZatoshi {
		return 0, amountErrorf("amount of %d zatoshi is higher than the "+
			"max allowed value of %d", zatoshi, MaxZatoshi)
	}
	return Amount(zatoshi), nil
}

// Add returns a + b. It fails if the sum exceeds MaxZatoshi. Since both
// operands are at most MaxZatoshi, the intermediate sum cannot overflow
// int64.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := int64(a) + int64(b)
	if sum > MaxZatoshi {
		return 0, amountErrorf("sum of %d and %d zatoshi is higher than "+
			"the max allowed value of %d", a, b, MaxZatoshi)
	}
	return Amount(sum), nil
}

// Sub returns a - b. It fails if the result would be negative.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b > a {
		return 0, amountErrorf("cannot subtract %d zatoshi from %d: "+
			"result is negative", b, a)
	}
	return a - b, nil
}

// MulFraction returns a * numerator / denominator, truncating toward zero.
// The truncation is consensus-critical: protocol reward fractions must be
// floored, not rounded, to match every other implementation bit for bit.
func (a Amount) MulFraction(numerator, denominator uint64) (Amount, error) {
	if denominator == 0 {
		return 0, amountErrorf("cannot scale %d zatoshi by a fraction "+
			"with a zero denominator", a)
	}
	if numerator > math.MaxInt64 ||
		(numerator != 0 && int64(a) > math.MaxInt64/int64(numerator)) {
		return 0, amountErrorf("scaling %d zatoshi by %d/%d overflows",
			a, numerator, denominator)
	}
	scaled := int64(a) * int64(numerator) / int64(denominator)
	return NewAmount(scaled)
}

// ToZEC returns the amount converted to whole ZEC.
func (a Amount) ToZEC() float64 {
	return float64(a) / ZatoshiPerZEC
}

// String returns the amount formatted in whole ZEC.
func (a Amount) String() string {
	return strconv.FormatFloat(a.ToZEC(), 'f', -1, 64) + " ZEC"
}
