package domain

import "time"

type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// AppUsage is one application's usage within a receipt period. Immutable
// once constructed; owned by the category that contains it.
type AppUsage struct {
	Name     string // display name, e.g. "INSTAGRAM"
	Category string // per-app label, e.g. "SOCIAL MEDIA"
	Minutes  int
	IconRef  string // bundled asset path or external artwork URL
}

// UsageCategory groups apps for display. Insertion order is display
// priority: social/communication first, then productivity, entertainment,
// browsing, other. A category only exists if it has at least one app.
type UsageCategory struct {
	Name string
	Apps []AppUsage
}

func (c UsageCategory) Subtotal() int {
	total := 0
	for _, app := range c.Apps {
		total += app.Minutes
	}
	return total
}

// Receipt is a generated screen-time summary. It is created on demand and
// replaced wholesale on regeneration, never partially mutated.
type Receipt struct {
	Period      Period
	StartDate   time.Time
	EndDate     time.Time
	GeneratedAt string // wall-clock time the receipt was produced, e.g. "3:04 PM"
	Categories  []UsageCategory
}

// GrandTotal recomputes the total from the categories every time, so the
// derivation stays consistent with the records it summarizes.
func (r Receipt) GrandTotal() int {
	total := 0
	for _, cat := range r.Categories {
		total += cat.Subtotal()
	}
	return total
}

type Recommendation struct {
	Headline string
	Message  string
}
