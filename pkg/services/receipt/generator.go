package receipt

import (
	"math/rand"
	"time"

	"github.com/folio-tools/folio-api/pkg/models/domain"
)

// Generator assembles receipts either from parsed upload data or from the
// synthetic roster. The clock and random source are injectable so tests
// get reproducible receipts.
type Generator struct {
	roster Roster
	clock  func() time.Time
	rng    *rand.Rand
}

type GeneratorOption func(*Generator)

func WithRoster(roster Roster) GeneratorOption {
	return func(g *Generator) { g.roster = roster }
}

func WithClock(clock func() time.Time) GeneratorOption {
	return func(g *Generator) { g.clock = clock }
}

func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = rng }
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		roster: DefaultRoster(),
		clock:  time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a receipt for the period. Parsed categories, when at
// least one is non-empty, are used verbatim; the generator never alters
// data supplied by the parser. Otherwise the synthetic roster is rolled,
// with every range multiplied by 7 for weekly receipts.
func (g *Generator) Generate(period domain.Period, parsed []domain.UsageCategory) domain.Receipt {
	now := g.clock()
	end := now
	start := now
	if period == domain.PeriodWeekly {
		start = now.AddDate(0, 0, -7)
	}

	receipt := domain.Receipt{
		Period:      period,
		StartDate:   start,
		EndDate:     end,
		GeneratedAt: FormatClock(now),
	}

	if hasApps(parsed) {
		receipt.Categories = parsed
		return receipt
	}

	multiplier := 1
	if period == domain.PeriodWeekly {
		multiplier = 7
	}

	for _, rc := range g.roster.Categories {
		cat := domain.UsageCategory{Name: rc.Name}
		for _, app := range rc.Apps {
			cat.Apps = append(cat.Apps, domain.AppUsage{
				Name:     app.Name,
				Category: app.Category,
				Minutes:  g.randomMinutes(app.Min, app.Max) * multiplier,
				IconRef:  app.Icon,
			})
		}
		receipt.Categories = append(receipt.Categories, cat)
	}
	return receipt
}

func (g *Generator) randomMinutes(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

func hasApps(categories []domain.UsageCategory) bool {
	for _, cat := range categories {
		if len(cat.Apps) > 0 {
			return true
		}
	}
	return false
}
