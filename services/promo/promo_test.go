package promo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_PercentageCode(t *testing.T) {
	res, err := Evaluate("WELCOME10", 6000)
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Equal(t, "WELCOME10", res.Code)
	assert.Equal(t, 600.0, res.Discount)
	assert.Equal(t, "Promo code applied. You save 600", res.Message)
}

func TestEvaluate_LargePercentageDiscount(t *testing.T) {
	res, err := Evaluate("FIRST20", 100000)
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Equal(t, 20000.0, res.Discount)
}

func TestEvaluate_FixedCode(t *testing.T) {
	res, err := Evaluate("FLAT1000", 30000)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, res.Discount)
}

func TestEvaluate_BelowMinimum(t *testing.T) {
	_, err := Evaluate("SAVE500", 9000)
	require.Error(t, err)

	var belowMin BelowMinimumError
	require.True(t, errors.As(err, &belowMin))
	assert.Equal(t, "SAVE500", belowMin.Code)
	assert.Equal(t, 10000.0, belowMin.Minimum)
}

func TestEvaluate_InvalidCode(t *testing.T) {
	_, err := Evaluate("XYZ", 5000)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestEvaluate_CaseInsensitive(t *testing.T) {
	res, err := Evaluate("  welcome10 ", 2000)
	require.NoError(t, err)

	assert.Equal(t, "WELCOME10", res.Code)
	assert.Equal(t, 200.0, res.Discount)
}

func TestEvaluate_DiscountNeverExceedsHalfTheAmount(t *testing.T) {
	// SAVE500 is worth 500 flat; right at the minimum a smaller booking
	// could otherwise lose more than half its value.
	for _, amount := range []float64{10000, 12000, 50000} {
		res, err := Evaluate("SAVE500", amount)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Discount, math.Round(amount*0.5))
	}
}

func TestEvaluate_AllCodesRespectTheirMinimum(t *testing.T) {
	cases := []struct {
		code    string
		minimum float64
	}{
		{"WELCOME10", 1000},
		{"FIRST20", 5000},
		{"PARTY15", 3000},
		{"SAVE500", 10000},
		{"FLAT1000", 25000},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			_, err := Evaluate(tc.code, tc.minimum-1)
			var belowMin BelowMinimumError
			require.True(t, errors.As(err, &belowMin))

			res, err := Evaluate(tc.code, tc.minimum)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Greater(t, res.Discount, 0.0)
		})
	}
}
