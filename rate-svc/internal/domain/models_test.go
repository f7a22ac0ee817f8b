package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRating(t *testing.T) {
	tests := []struct {
		name          string
		avg           float64
		total         int
		rating        int
		expectedAvg   float64
		expectedTotal int
	}{
		{"first_ever_review", 0, 0, 4, 4.0, 1},
		{"third_review", 4.0, 2, 5, 4.33, 3},
		{"rounding_down", 4.5, 2, 2, 3.67, 3},
		{"all_ones", 1.0, 9, 1, 1.0, 10},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			avg, total := AddRating(testCase.avg, testCase.total, testCase.rating)
			assert.Equal(t, testCase.expectedAvg, avg)
			assert.Equal(t, testCase.expectedTotal, total)
		})
	}
}

func TestReplaceRating(t *testing.T) {
	tests := []struct {
		name        string
		avg         float64
		total       int
		oldRating   int
		rating      int
		expectedAvg float64
	}{
		{"five_becomes_one", 4.33, 3, 5, 1, 3.0},
		{"same_rating_is_stable", 4.33, 3, 5, 5, 4.33},
		{"single_review_replaced", 2.0, 1, 2, 5, 5.0},
		{"zero_total_guard", 0, 0, 3, 5, 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expectedAvg, ReplaceRating(testCase.avg, testCase.total, testCase.oldRating, testCase.rating))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.33, Round2(13.0/3.0))
	assert.Equal(t, 4.34, Round2(4.336))
	assert.Equal(t, 0.0, Round2(0))
}
