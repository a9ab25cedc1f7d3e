package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_Brackets(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		headline string
	}{
		{"zero", 0, "IMPRESSIVE!"},
		{"just under two hours", 119, "IMPRESSIVE!"},
		{"exactly two hours", 120, "NICE WORK!"},
		{"just under four hours", 239, "NICE WORK!"},
		{"exactly four hours", 240, "NOT BAD!"},
		{"exactly six hours", 360, "TIME FOR A BREAK!"},
		{"exactly ten hours", 600, "TIME FOR A BREAK!"},
		{"exactly fifteen hours", 900, "EMERGENCY!"},
		{"just under twenty hours", 1199, "EMERGENCY!"},
		{"exactly twenty hours", 1200, "ARE YOU OKAY?"},
		{"way over", 5000, "ARE YOU OKAY?"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.headline, Recommend(tc.minutes).Headline)
		})
	}
}

func TestRecommend_BreakBracketsDiffer(t *testing.T) {
	// Both 6-10h and 10-15h read TIME FOR A BREAK! but with distinct
	// messages.
	low := Recommend(360)
	high := Recommend(600)
	assert.Equal(t, low.Headline, high.Headline)
	assert.NotEqual(t, low.Message, high.Message)
}
