package promo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Kind distinguishes percentage from fixed-value discounts.
type Kind string

const (
	Percentage Kind = "percentage"
	Fixed      Kind = "fixed"
)

// Rule is one entry of the promo table.
type Rule struct {
	Value         float64
	Kind          Kind
	MinimumAmount float64
}

// The promo table is static configuration; codes are matched
// case-insensitively.
var table = map[string]Rule{
	"WELCOME10": {Value: 10, Kind: Percentage, MinimumAmount: 1000},
	"FIRST20":   {Value: 20, Kind: Percentage, MinimumAmount: 5000},
	"PARTY15":   {Value: 15, Kind: Percentage, MinimumAmount: 3000},
	"SAVE500":   {Value: 500, Kind: Fixed, MinimumAmount: 10000},
	"FLAT1000":  {Value: 1000, Kind: Fixed, MinimumAmount: 25000},
}

// ErrInvalidCode is returned when the code is not in the table.
var ErrInvalidCode = errors.New("invalid promo code")

// BelowMinimumError is returned when the booking amount does not reach the
// code's minimum.
type BelowMinimumError struct {
	Code    string
	Minimum float64
}

func (e BelowMinimumError) Error() string {
	return fmt.Sprintf("promo code %s requires a minimum booking amount of %.0f", e.Code, e.Minimum)
}

// Result describes an applicable discount.
type Result struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

// Evaluate maps a code and booking amount to a discount. Percentage codes
// yield round(amount*value/100), fixed codes yield their value; either way
// the discount is capped at half the booking amount. Evaluate has no side
// effects; callers apply the result through the booking lifecycle.
func Evaluate(code string, amount float64) (Result, error) {
	rule, ok := table[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Result{}, ErrInvalidCode
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if amount < rule.MinimumAmount {
		return Result{}, BelowMinimumError{Code: normalized, Minimum: rule.MinimumAmount}
	}

	var discount float64
	switch rule.Kind {
	case Percentage:
		discount = math.Round(amount * rule.Value / 100)
	case Fixed:
		discount = rule.Value
	}

	maxDiscount := math.Round(amount * 0.5)
	if discount > maxDiscount {
		discount = maxDiscount
	}

	return Result{
		Valid:    true,
		Code:     normalized,
		Discount: discount,
		Message:  fmt.Sprintf("Promo code applied. You save %.0f", discount),
	}, nil
}
