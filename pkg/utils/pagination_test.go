package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		perPage  int
		expected int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"fewer than one page", 3, 10, 1},
		{"zero total", 0, 10, 0},
		{"zero per page", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTotalPages(tt.total, tt.perPage))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 40, CalculateOffset(5, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10), "page below 1 clamps to first page")
}
