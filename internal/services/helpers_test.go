package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilToTenth(t *testing.T) {
	cases := []struct {
		name  string
		sum   int64
		count int64
		want  float64
	}{
		{"no ratings", 0, 0, 0},
		{"single score", 4, 1, 4.0},
		{"exact half stays exact", 9, 2, 4.5},
		{"thirds round up", 13, 3, 4.4},
		{"another third", 14, 3, 4.7},
		{"whole number untouched", 12, 3, 4.0},
		{"fifths exact", 21, 5, 4.2},
		{"minimum", 1, 1, 1.0},
		{"maximum", 15, 3, 5.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ceilToTenth(tc.sum, tc.count))
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	page, size := normalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = normalizePagination(-5, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = normalizePagination(3, 50)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, calculateTotalPages(0, 20))
	assert.Equal(t, 1, calculateTotalPages(1, 20))
	assert.Equal(t, 1, calculateTotalPages(20, 20))
	assert.Equal(t, 2, calculateTotalPages(21, 20))
	assert.Equal(t, 0, calculateTotalPages(10, 0))
}
