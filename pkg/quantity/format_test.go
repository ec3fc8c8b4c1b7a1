package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		q        Quantity
		expected string
	}{
		{
			name:     "whole amount with ingredient",
			q:        New(250, unit.Gram).Of(ingredient.Flour),
			expected: "250 g Flour",
		},
		{
			name:     "no ingredient",
			q:        New(480, unit.Milliliter),
			expected: "480 ml",
		},
		{
			name:     "teaspoon abbreviation",
			q:        New(3, unit.Teaspoon).Of(ingredient.Sugar),
			expected: "3 tsp. Sugar",
		},
		{
			name:     "symbol-first unit",
			q:        New(6, unit.Thermostat),
			expected: "thermostat 6",
		},
		{
			name:     "fractional amount",
			q:        New(1.5, unit.Cup),
			expected: "1.5 cup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.q.String())
		})
	}
}

func TestString_ConvertedAmount(t *testing.T) {
	q, err := New(250, unit.Gram).Of(ingredient.Flour).To(unit.Cup)
	require.NoError(t, err)
	assert.Equal(t, "1.4881 cup Flour", q.String())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "integer", input: 250, expected: "250"},
		{name: "rounds to display digits", input: 1.4880952380952381, expected: "1.4881"},
		{name: "trailing zeros stripped", input: 1.5, expected: "1.5"},
		{name: "negative", input: -273.15, expected: "-273.15"},
		{name: "zero", input: 0, expected: "0"},
		{name: "small value", input: 0.000625, expected: "0.000625"},
		{name: "large value uses exponent", input: 12000000, expected: "1.2e+07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatAmount(tt.input))
		})
	}
}
