package receipt

import "github.com/folio-tools/folio-api/pkg/models/domain"

type tier struct {
	maxHours float64 // exclusive upper bound
	rec      domain.Recommendation
}

// Brackets are half-open: a boundary value belongs to the upper bracket,
// so exactly 2h of usage already reads "NICE WORK!".
var tiers = []tier{
	{2, domain.Recommendation{Headline: "IMPRESSIVE!", Message: "You're crushing it! 💪"}},
	{4, domain.Recommendation{Headline: "NICE WORK!", Message: "You're doing great! 🌟"}},
	{6, domain.Recommendation{Headline: "NOT BAD!", Message: "Pretty good! 👍\nMaybe add a walk to your day?"}},
	{10, domain.Recommendation{Headline: "TIME FOR A BREAK!", Message: "Go touch some grass 🌱"}},
	{15, domain.Recommendation{Headline: "TIME FOR A BREAK!", Message: "Your eyes need a rest! 👀"}},
	{20, domain.Recommendation{Headline: "EMERGENCY!", Message: "Touch grass IMMEDIATELY 🌱"}},
}

var overLimit = domain.Recommendation{Headline: "ARE YOU OKAY?", Message: "There's a world outside! 🌍"}

// Recommend maps a receipt's grand total to its tiered message. Pure and
// deterministic.
func Recommend(totalMinutes int) domain.Recommendation {
	hours := float64(totalMinutes) / 60
	for _, t := range tiers {
		if hours < t.maxHours {
			return t.rec
		}
	}
	return overLimit
}
