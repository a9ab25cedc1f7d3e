package screentime

import (
	"regexp"
	"strings"
)

var timeFormatsRe = regexp.MustCompile(`\d+h\s*\d+m|\d+\s*min|\d+:\d+`)

// IndicatorCount counts the Screen Time markers present in recognized
// text. OCR drops words regularly, so validation is a tally rather than a
// single required phrase.
func IndicatorCount(text string) int {
	lower := strings.ToLower(text)

	indicators := []bool{
		strings.Contains(lower, "screen time") || strings.Contains(lower, "screentime"),
		strings.Contains(lower, "most used") || strings.Contains(lower, "mostused"),
		strings.Contains(lower, "limit"),
		strings.Contains(lower, "categor"),
		strings.Contains(lower, "this week") || strings.Contains(lower, "today"),
		timeFormatsRe.MatchString(lower),
		strings.Contains(lower, "pickup"),
		strings.Contains(lower, "average"),
	}

	count := 0
	for _, present := range indicators {
		if present {
			count++
		}
	}
	return count
}

// minIndicators is the confidence floor: two independent markers tolerate
// OCR misses while still rejecting arbitrary screenshots.
const minIndicators = 2

func LooksLikeScreenTime(text string) bool {
	return IndicatorCount(text) >= minIndicators
}
