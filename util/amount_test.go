package util_test

import (
	"errors"
	"testing"

	. "github.com/zecnet/zecd/util"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		name     string
		zatoshi  int64
		valid    bool
		expected Amount
	}{
		// Positive tests.
		{
			name:     "zero",
			zatoshi:  0,
			valid:    true,
			expected: 0,
		},
		{
			name:     "one ZEC",
			zatoshi:  ZatoshiPerZEC,
			valid:    true,
			expected: ZatoshiPerZEC,
		},
		{
			name:     "max supply",
			zatoshi:  MaxZatoshi,
			valid:    true,
			expected: MaxZatoshi,
		},

		// Negative tests.
		{
			name:    "negative",
			zatoshi: -1,
			valid:   false,
		},
		{
			name:    "exceeds max supply",
			zatoshi: MaxZatoshi + 1,
			valid:   false,
		},
	}

	for _, test := range tests {
		amount, err := NewAmount(test.zatoshi)
		if test.valid {
			if err != nil {
				t.Errorf("%v: unexpected error %v", test.name, err)
				continue
			}
			if amount != test.expected {
				t.Errorf("%v: got %d, want %d", test.name, amount, test.expected)
			}
			continue
		}
		if err == nil {
			t.Errorf("%v: expected error, got none", test.name)
			continue
		}
		var amountErr *AmountError
		if !errors.As(err, &amountErr) {
			t.Errorf("%v: expected *AmountError, got %T", test.name, err)
		}
	}
}

func TestAmountAddSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Amount
		op       string
		valid    bool
		expected Amount
	}{
		{
			name:     "simple add",
			a:        100,
			b:        23,
			op:       "add",
			valid:    true,
			expected: 123,
		},
		{
			name:  "add exceeds max supply",
			a:     MaxZatoshi,
			b:     1,
			op:    "add",
			valid: false,
		},
		{
			name:     "add up to max supply",
			a:        MaxZatoshi - 1,
			b:        1,
			op:       "add",
			valid:    true,
			expected: MaxZatoshi,
		},
		{
			name:     "simple sub",
			a:        123,
			b:        23,
			op:       "sub",
			valid:    true,
			expected: 100,
		},
		{
			name:     "sub to zero",
			a:        123,
			b:        123,
			op:       "sub",
			valid:    true,
			expected: 0,
		},
		{
			name:  "sub goes negative",
			a:     100,
			b:     101,
			op:    "sub",
			valid: false,
		},
	}

	for _, test := range tests {
		var result Amount
		var err error
		switch test.op {
		case "add":
			result, err = test.a.Add(test.b)
		case "sub":
			result, err = test.a.Sub(test.b)
		}
		if test.valid {
			if err != nil {
				t.Errorf("%v: unexpected error %v", test.name, err)
				continue
			}
			if result != test.expected {
				t.Errorf("%v: got %d, want %d", test.name, result, test.expected)
			}
			continue
		}
		var amountErr *AmountError
		if !errors.As(err, &amountErr) {
			t.Errorf("%v: expected *AmountError, got %v", test.name, err)
		}
	}
}

func TestAmountMulFraction(t *testing.T) {
	tests := []struct {
		name     string
		a        Amount
		num, den uint64
		valid    bool
		expected Amount
	}{
		{
			name:     "exact fifth",
			a:        1_250_000_000,
			num:      1,
			den:      5,
			valid:    true,
			expected: 250_000_000,
		},
		{
			name:     "seven percent",
			a:        312_500_000,
			num:      7,
			den:      100,
			valid:    true,
			expected: 21_875_000,
		},
		{
			name: "truncates toward zero",
			a:    7,
			num:  1,
			den:  5,
			// 7/5 = 1.4, floored.
			valid:    true,
			expected: 1,
		},
		{
			name:     "truncates sub-unit result",
			a:        3,
			num:      1,
			den:      5,
			valid:    true,
			expected: 0,
		},
		{
			name:     "numerator larger than denominator at max supply",
			a:        MaxZatoshi,
			num:      100,
			den:      100,
			valid:    true,
			expected: MaxZatoshi,
		},
		{
			name:  "zero denominator",
			a:     100,
			num:   1,
			den:   0,
			valid: false,
		},
		{
			name:  "scales above max supply",
			a:     MaxZatoshi,
			num:   101,
			den:   100,
			valid: false,
		},
	}

	for _, test := range tests {
		result, err := test.a.MulFraction(test.num, test.den)
		if test.valid {
			if err != nil {
				t.Errorf("%v: unexpected error %v", test.name, err)
				continue
			}
			if result != test.expected {
				t.Errorf("%v: got %d, want %d", test.name, result, test.expected)
			}
			continue
		}
		var amountErr *AmountError
		if !errors.As(err, &amountErr) {
			t.Errorf("%v: expected *AmountError, got %v", test.name, err)
		}
	}
}
