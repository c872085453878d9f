package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"exact", 9, 3, 3},
		{"rounds up", 7, 3, 3},
		{"smaller than divisor", 1, 1000, 1},
		{"zero numerator", 0, 4, 0},
		{"negative numerator truncates toward zero", -5, 2, -2},
		{"zero divisor", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CeilDiv(tt.a, tt.b))
		})
	}
}

func TestCeilDiv_CraftCountBounds(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for amount := 1; amount <= 50; amount++ {
			crafts := CeilDiv(amount, size)
			assert.Less(t, (crafts-1)*size, amount, "amount=%d size=%d", amount, size)
			assert.LessOrEqual(t, amount, crafts*size, "amount=%d size=%d", amount, size)
		}
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, -1, Min(3, -1))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, 3, Max(3, -1))
}
