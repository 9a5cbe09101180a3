package moneyfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"thousands separator", 1000.0, "1,000"},
		{"millions", 1234567.0, "1,234,567"},
		{"decimal preserved", 100.5, "100.5"},
		{"small amount", 42.0, "42"},
		{"zero", 0.0, "0"},
		{"int input", 1000, "1,000"},
		{"int64 input", int64(2500), "2,500"},
		{"nan", math.NaN(), "0"},
		{"string input", "1000", "0"},
		{"nil input", nil, "0"},
		{"bool input", true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.input))
		})
	}
}

func TestAmount_NeverPanics(t *testing.T) {
	// Totality over oddball inputs.
	for _, input := range []any{struct{}{}, []any{1}, map[string]any{}, make(chan int)} {
		assert.NotPanics(t, func() { Amount(input) })
		assert.Equal(t, "0", Amount(input))
	}
}
