package receipt

import (
	"math/rand"
	"testing"
	"time"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 15, 4, 0, 0, time.UTC)
}

func newTestGenerator(opts ...GeneratorOption) *Generator {
	base := []GeneratorOption{
		WithClock(fixedClock),
		WithRand(rand.New(rand.NewSource(1))),
	}
	return NewGenerator(append(base, opts...)...)
}

func TestGenerate_DailySyntheticReceipt(t *testing.T) {
	gen := newTestGenerator()

	receipt := gen.Generate(domain.PeriodDaily, nil)

	assert.Equal(t, domain.PeriodDaily, receipt.Period)
	assert.Equal(t, receipt.StartDate, receipt.EndDate, "daily receipts cover a single day")
	assert.Equal(t, "3:04 PM", receipt.GeneratedAt)

	roster := DefaultRoster()
	require.Len(t, receipt.Categories, len(roster.Categories))
	for i, cat := range receipt.Categories {
		assert.Equal(t, roster.Categories[i].Name, cat.Name)
		require.Len(t, cat.Apps, len(roster.Categories[i].Apps))
		for j, app := range cat.Apps {
			ar := roster.Categories[i].Apps[j]
			assert.Equal(t, ar.Name, app.Name)
			assert.Equal(t, ar.Icon, app.IconRef)
			assert.GreaterOrEqual(t, app.Minutes, ar.Min)
			assert.LessOrEqual(t, app.Minutes, ar.Max)
		}
	}
}

func TestGenerate_WeeklyDatesSpanSevenDays(t *testing.T) {
	gen := newTestGenerator()

	receipt := gen.Generate(domain.PeriodWeekly, nil)

	assert.Equal(t, domain.PeriodWeekly, receipt.Period)
	assert.Equal(t, 7*24*time.Hour, receipt.EndDate.Sub(receipt.StartDate))
}

func TestGenerate_WeeklyMultipliesRanges(t *testing.T) {
	roster := Roster{
		Categories: []RosterCategory{{
			Name: "ENTERTAINMENT",
			Apps: []AppRange{
				{Name: "YOUTUBE", Category: "ENTERTAINMENT", Min: 10, Max: 10},
			},
		}},
	}
	gen := newTestGenerator(WithRoster(roster))

	daily := gen.Generate(domain.PeriodDaily, nil)
	weekly := gen.Generate(domain.PeriodWeekly, nil)

	require.Len(t, daily.Categories, 1)
	assert.Equal(t, 10, daily.Categories[0].Apps[0].Minutes)
	require.Len(t, weekly.Categories, 1)
	assert.Equal(t, 70, weekly.Categories[0].Apps[0].Minutes)
}

func TestGenerate_ParsedDataUsedVerbatim(t *testing.T) {
	gen := newTestGenerator()

	parsed := []domain.UsageCategory{{
		Name: "SOCIAL & COMMUNICATION",
		Apps: []domain.AppUsage{{Name: "INSTAGRAM", Category: "SOCIAL MEDIA", Minutes: 135}},
	}}

	receipt := gen.Generate(domain.PeriodDaily, parsed)

	assert.Equal(t, parsed, receipt.Categories)
	assert.Equal(t, 135, receipt.GrandTotal())
}

func TestGenerate_EmptyParsedCategoriesFallBackToRoster(t *testing.T) {
	gen := newTestGenerator()

	// Categories without apps do not count as parsed data.
	parsed := []domain.UsageCategory{{Name: "OTHER"}}

	receipt := gen.Generate(domain.PeriodDaily, parsed)

	assert.Len(t, receipt.Categories, len(DefaultRoster().Categories))
}

func TestGenerate_SameSeedSameReceipt(t *testing.T) {
	first := NewGenerator(WithClock(fixedClock), WithRand(rand.New(rand.NewSource(42)))).
		Generate(domain.PeriodDaily, nil)
	second := NewGenerator(WithClock(fixedClock), WithRand(rand.New(rand.NewSource(42)))).
		Generate(domain.PeriodDaily, nil)

	assert.Equal(t, first, second)
}
