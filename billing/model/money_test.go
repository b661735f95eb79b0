package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyMarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    decimal.Decimal
		expected string
	}{
		{
			name:     "trailing_zeros_kept",
			input:    decimal.New(15000, -2),
			expected: `"150.00"`,
		},
		{
			name:     "whole_number",
			input:    decimal.NewFromInt(42),
			expected: `"42.00"`,
		},
		{
			name:     "zero",
			input:    decimal.Zero,
			expected: `"0.00"`,
		},
		{
			name:     "cents",
			input:    decimal.RequireFromString("37.61"),
			expected: `"37.61"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(NewMoney(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(data))
		})
	}
}

func TestMoneyRoundTripsInsideDocument(t *testing.T) {
	doc := BillingDocument{Total: NewMoney(decimal.New(15000, -2))}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total":"150.00"`)

	var decoded BillingDocument
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Total.Equal(doc.Total.Decimal))
}
